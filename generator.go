package webtable

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/jaswdr/faker"

	"webtable/keys"
	"webtable/page"
)

const (
	contentTypeHTML = "text/html"

	// paragraphBytes rough size of one generated paragraph.
	paragraphBytes = 500

	// maxAgeDays pages are modified within this many days before now.
	maxAgeDays = 90
)

var (
	statusCodes   = []int{200, 404, 500}
	statusWeights = []float64{92, 6, 2}

	blogInlinks       = []int{0, 1, 2, 5, 12}
	blogInlinkWeights = []float64{20, 40, 25, 10, 5}

	// recent days are more likely, weight falls from 2.0 to 0.2.
	ageWeights = func() []float64 {
		w := make([]float64, maxAgeDays)
		for day := range w {
			decay := float64(day) / 50
			if decay > 1.8 {
				decay = 1.8
			}
			w[day] = 2.0 - decay
		}
		return w
	}()
)

// Generator produces synthetic pages. All randomness flows from the seed it
// was built with, so a Generator is reproducible but not safe for
// concurrent use.
type Generator struct {
	r       *rand.Rand
	fake    faker.Faker
	domains []string
	now     time.Time
}

// NewGenerator creates a generator from opts.Seed, opts.Domains and opts.Now.
func NewGenerator(opts Options) *Generator {
	domains := opts.Domains
	if len(domains) == 0 {
		domains = DefaultDomains
	}
	return &Generator{
		r:       rand.New(rand.NewSource(opts.Seed)),
		fake:    faker.NewWithSeed(rand.NewSource(opts.Seed ^ 0x5eed)),
		domains: domains,
		now:     opts.now(),
	}
}

// Pages generates n pages and then wires link urls between them.
func (g *Generator) Pages(n int) []*page.Page {
	pages := make([]*page.Page, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, g.Page(i))
	}
	g.linkPages(pages)
	return pages
}

// Page generates the i-th page, i only shapes its path.
func (g *Generator) Page(i int) *page.Page {
	domain := g.domains[g.r.Intn(len(g.domains))]
	typ := page.Types[g.r.Intn(len(page.Types))]
	path := typ.Path(i)

	p := &page.Page{
		RowKey:      keys.RowKey(domain, path),
		Domain:      domain,
		URL:         page.URLFor(domain, path),
		Path:        path,
		Type:        typ,
		ContentType: contentTypeHTML,
	}

	var target int
	switch typ {
	case page.Blog:
		target = g.between(5000, 50000)
		p.Title = "Blog Post: " + g.fake.Lorem().Sentence(6)
	case page.Products:
		target = g.between(2000, 15000)
		p.Title = "Product: " + capitalize(g.fake.Lorem().Word())
	default:
		target = g.between(500, 5000)
		p.Title = typ.Title() + ": " + g.fake.Lorem().Sentence(6)
	}
	p.ContentHTML = g.html(p.Title, target)
	p.ContentSize = int64(len(p.ContentHTML))

	daysAgo := g.weighted(ageWeights)
	p.LastModified = page.Unix(g.now.AddDate(0, 0, -daysAgo).Unix())

	switch typ {
	case page.Home:
		p.Outlinks = g.between(5, 15)
		p.Inlinks = g.between(1, 8)
	case page.Blog:
		p.Outlinks = g.between(2, 8)
		p.Inlinks = blogInlinks[g.weighted(blogInlinkWeights)]
	default:
		p.Outlinks = g.between(0, 5)
		p.Inlinks = g.between(0, 3)
	}
	p.StatusCode = statusCodes[g.weighted(statusWeights)]
	return p
}

// html renders a page body of about size bytes and cuts it to exactly size
// when it comes out longer.
func (g *Generator) html(title string, size int) string {
	var b strings.Builder
	b.WriteString("<html><head><title>")
	b.WriteString(title)
	b.WriteString("</title></head><body><h1>")
	b.WriteString(title)
	b.WriteString("</h1>")
	paragraphs := size / paragraphBytes
	if paragraphs < 1 {
		paragraphs = 1
	}
	for i := 0; i < paragraphs; i++ {
		b.WriteString("<p>")
		b.WriteString(g.fake.Lorem().Paragraph(3))
		b.WriteString("</p>")
	}
	b.WriteString("</body></html>")

	s := b.String()
	if len(s) > size {
		s = s[:size]
	}
	return s
}

// linkPages fills the outbound and inbound url lists. Each list holds up to
// the page's link count distinct entries drawn from the other pages' urls.
func (g *Generator) linkPages(pages []*page.Page) {
	urls := make([]string, len(pages))
	for i, p := range pages {
		urls[i] = p.URL
	}
	for _, p := range pages {
		if p.Outlinks > 0 {
			p.OutboundURLs = g.sample(others(urls, p.URL), p.Outlinks)
		}
		if p.Inlinks > 0 {
			p.InboundURLs = g.sample(others(urls, p.URL), p.Inlinks)
		}
	}
}

// others returns the distinct urls other than self, in first-seen order.
func others(urls []string, self string) []string {
	out := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if u == self {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// sample picks min(k, len(pool)) entries without replacement, pool is reordered.
func (g *Generator) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + g.r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.r.Intn(hi-lo+1)
}

// weighted returns an index into weights chosen proportionally to its weight.
func (g *Generator) weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := g.r.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// itoa shortens the many int to string conversions of the command builder.
func itoa[T int | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}
