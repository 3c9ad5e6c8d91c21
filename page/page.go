// Package page defines the crawled page record that keys and load commands are built from.
package page

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField a required page field is empty.
	ErrMissingField = errors.New("page: missing field")

	// ErrUnknownType page type name is not recognised.
	ErrUnknownType = errors.New("page: unknown type")
)

// Type is the kind of page, it decides path shape, size and link pattern.
type Type int8

const (
	Home Type = iota
	About
	Contact
	Blog
	Products
	Services
	News
)

var typeNames = [...]string{"home", "about", "contact", "blog", "products", "services", "news"}

// Types lists every page type in declaration order.
var Types = []Type{Home, About, Contact, Blog, Products, Services, News}

func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int8(t))
	}
	return typeNames[t]
}

// Title is the type name with its first letter upper-cased.
func (t Type) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Path renders the url path of the i-th generated page of this type.
func (t Type) Path(i int) string {
	switch t {
	case Home:
		return "/"
	case Blog:
		return fmt.Sprintf("/blog/post-%d", i)
	case Products:
		return fmt.Sprintf("/products/item-%d", i)
	case News:
		return fmt.Sprintf("/news/article-%d", i)
	default:
		return "/" + t.String()
	}
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Size classes used by the dataset summary. They match the size index buckets.
const (
	ClassSmall  = "small"
	ClassMedium = "medium"
	ClassLarge  = "large"
	ClassHuge   = "huge"
)

// Page is one synthetic crawled page.
type Page struct {
	RowKey       string
	Domain       string
	URL          string
	Path         string
	Type         Type
	Title        string
	ContentHTML  string
	ContentSize  int64
	StatusCode   int
	LastModified *int64 // unix seconds, nil when unknown
	Outlinks     int
	Inlinks      int
	ContentType  string
	OutboundURLs []string
	InboundURLs  []string
}

// Validate reports the first required field left empty.
// Key derivation refuses a page that fails it instead of emitting half a key.
func (p *Page) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: page", ErrMissingField)
	}
	switch {
	case p.Domain == "":
		return fmt.Errorf("%w: domain", ErrMissingField)
	case p.URL == "":
		return fmt.Errorf("%w: url", ErrMissingField)
	case p.LastModified == nil:
		return fmt.Errorf("%w: last_modified", ErrMissingField)
	}
	return nil
}

// Unix returns a LastModified value for ts.
func Unix(ts int64) *int64 {
	return &ts
}

// URLFor joins domain and path into the page url, adding the leading slash
// path may lack.
func URLFor(domain, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "http://" + domain + path
}

// SizeClass buckets ContentSize the same way the size index does.
func (p *Page) SizeClass() string {
	switch {
	case p.ContentSize < 1000:
		return ClassSmall
	case p.ContentSize < 10000:
		return ClassMedium
	case p.ContentSize < 100000:
		return ClassLarge
	default:
		return ClassHuge
	}
}
