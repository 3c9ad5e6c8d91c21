// Package keys derives the row key of a page and the keys it is filed under
// in the four secondary index tables.
//
// Row keys put the reversed domain first, so a lexicographic scan returns all
// pages of a host and its subdomains contiguously. Index keys put a coarse
// bucket first and embed the row key, so every index row names exactly one
// main table row. The url index is the exception: its key is a bare hash and
// the row key travels next to it in the ref:rowkey column.
package keys

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"webtable/page"
)

const (
	// MaxPathLen cleaned paths are cut to this many characters. Distinct paths
	// sharing a longer sanitized prefix end up with the same row key.
	MaxPathLen = 25

	// URLKeyLen number of hex characters kept from the url digest.
	URLKeyLen = 16

	homePath = "home"
)

// Size buckets of the size index, in ascending order.
const (
	SizeSmall  = "small_0001KB"
	SizeMedium = "medium_010KB"
	SizeLarge  = "large_0100KB"
	SizeHuge   = "huge_1000KB"
)

// Link kinds prefixing link index keys.
const (
	KindInlinks  = "inlinks"
	KindOutlinks = "outlinks"
)

// IndexKeySet holds every secondary key of one page.
type IndexKeySet struct {
	TimeKey    string
	SizeKey    string
	InlinkKey  string
	OutlinkKey string
	URLKey     string
}

// RowKey builds the main table key: reversed domain, "_", cleaned path.
func RowKey(domain, path string) string {
	labels := strings.Split(domain, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return strings.Join(labels, ".") + "_" + cleanPath(path)
}

func cleanPath(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		path = homePath
	}

	var b strings.Builder
	n := 0
	for _, r := range path {
		if n == MaxPathLen {
			break
		}
		if isKeyRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
		n++
	}
	return b.String()
}

func isKeyRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_'
}

// SizeBucket labels a content size in bytes.
func SizeBucket(size int64) string {
	switch {
	case size < 1000:
		return SizeSmall
	case size < 10000:
		return SizeMedium
	case size < 100000:
		return SizeLarge
	default:
		return SizeHuge
	}
}

// LinkBucket labels a link count. Labels sort in the same order as counts.
func LinkBucket(count int) string {
	switch {
	case count <= 0:
		return "00"
	case count <= 2:
		return "02"
	case count <= 5:
		return "05"
	case count <= 10:
		return "10"
	default:
		return "99"
	}
}

// LinkKey builds "{kind}_{bucket}_{rowKey}".
func LinkKey(kind string, count int, rowKey string) string {
	return kind + "_" + LinkBucket(count) + "_" + rowKey
}

// URLKey is the first 16 lowercase hex characters of the MD5 of url.
func URLKey(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])[:URLKeyLen]
}

// TimeKey prefixes rowKey with the YYYYMMDD calendar date of ts in loc.
func TimeKey(ts int64, loc *time.Location, rowKey string) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc).Format("20060102") + "_" + rowKey
}

// Deriver computes index keys. The zero value uses the local time zone.
type Deriver struct {
	loc *time.Location
}

// NewDeriver returns a Deriver dating time keys in loc, nil means local time.
func NewDeriver(loc *time.Location) *Deriver {
	return &Deriver{loc: loc}
}

// Location reports the time zone used for time keys.
func (d *Deriver) Location() *time.Location {
	if d == nil || d.loc == nil {
		return time.Local
	}
	return d.loc
}

// IndexKeys derives the secondary keys of p. An empty p.RowKey is derived
// from the page's domain and path.
func (d *Deriver) IndexKeys(p *page.Page) (IndexKeySet, error) {
	if err := p.Validate(); err != nil {
		return IndexKeySet{}, err
	}
	rowKey := p.RowKey
	if rowKey == "" {
		rowKey = RowKey(p.Domain, p.Path)
	}
	return IndexKeySet{
		TimeKey:    TimeKey(*p.LastModified, d.Location(), rowKey),
		SizeKey:    SizeBucket(p.ContentSize) + "_" + rowKey,
		InlinkKey:  LinkKey(KindInlinks, p.Inlinks, rowKey),
		OutlinkKey: LinkKey(KindOutlinks, p.Outlinks, rowKey),
		URLKey:     URLKey(p.URL),
	}, nil
}
