package webtable

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webtable/keys"
	"webtable/page"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testOptions(dir string) Options {
	opts := DefaultOptions(dir)
	opts.Seed = 42
	opts.TimeZone = "UTC"
	opts.Now = func() time.Time { return fixedNow }
	return opts
}

func TestGenerator_Deterministic(t *testing.T) {
	opts := testOptions("")
	a := NewGenerator(opts).Pages(40)
	b := NewGenerator(opts).Pages(40)
	assert.Equal(t, a, b)

	opts.Seed = 43
	c := NewGenerator(opts).Pages(40)
	assert.NotEqual(t, a, c)
}

func TestGenerator_Pages(t *testing.T) {
	pages := NewGenerator(testOptions("")).Pages(200)
	require.Len(t, pages, 200)

	oldest := fixedNow.AddDate(0, 0, -(maxAgeDays - 1)).Unix()
	for i, p := range pages {
		assert.Contains(t, DefaultDomains, p.Domain)
		assert.Equal(t, p.Type.Path(i), p.Path)
		assert.Equal(t, "http://"+p.Domain+p.Path, p.URL)
		assert.Equal(t, keys.RowKey(p.Domain, p.Path), p.RowKey)
		assert.Equal(t, "text/html", p.ContentType)
		assert.Contains(t, []int{200, 404, 500}, p.StatusCode)
		assert.NoError(t, p.Validate())

		assert.Equal(t, int64(len(p.ContentHTML)), p.ContentSize)
		assert.True(t, strings.HasPrefix(p.ContentHTML, "<html><head><title>"), p.ContentHTML[:20])
		switch p.Type {
		case page.Blog:
			assert.LessOrEqual(t, p.ContentSize, int64(50000))
			assert.True(t, strings.HasPrefix(p.Title, "Blog Post: "))
			assert.Contains(t, []int{0, 1, 2, 5, 12}, p.Inlinks)
			assert.GreaterOrEqual(t, p.Outlinks, 2)
			assert.LessOrEqual(t, p.Outlinks, 8)
		case page.Products:
			assert.LessOrEqual(t, p.ContentSize, int64(15000))
			assert.True(t, strings.HasPrefix(p.Title, "Product: "))
		case page.Home:
			assert.LessOrEqual(t, p.ContentSize, int64(5000))
			assert.GreaterOrEqual(t, p.Outlinks, 5)
			assert.LessOrEqual(t, p.Outlinks, 15)
			assert.GreaterOrEqual(t, p.Inlinks, 1)
			assert.LessOrEqual(t, p.Inlinks, 8)
		default:
			assert.LessOrEqual(t, p.ContentSize, int64(5000))
			assert.True(t, strings.HasPrefix(p.Title, p.Type.Title()+": "))
			assert.LessOrEqual(t, p.Outlinks, 5)
			assert.LessOrEqual(t, p.Inlinks, 3)
		}

		require.NotNil(t, p.LastModified)
		assert.LessOrEqual(t, *p.LastModified, fixedNow.Unix())
		assert.GreaterOrEqual(t, *p.LastModified, oldest)
	}
}

func TestGenerator_Links(t *testing.T) {
	pages := NewGenerator(testOptions("")).Pages(60)
	for _, p := range pages {
		for _, list := range []struct {
			urls  []string
			count int
		}{{p.OutboundURLs, p.Outlinks}, {p.InboundURLs, p.Inlinks}} {
			if list.count == 0 {
				assert.Empty(t, list.urls)
				continue
			}
			assert.NotEmpty(t, list.urls)
			assert.LessOrEqual(t, len(list.urls), list.count)
			seen := make(map[string]bool)
			for _, u := range list.urls {
				assert.NotEqual(t, p.URL, u)
				assert.False(t, seen[u], "duplicate %s", u)
				seen[u] = true
			}
		}
	}
}

func TestOthers_Distinct(t *testing.T) {
	urls := []string{"http://a/", "http://b/", "http://a/", "http://c/", "http://b/", "http://a/"}
	assert.Equal(t, []string{"http://b/", "http://c/"}, others(urls, "http://a/"))
	assert.Equal(t, []string{"http://a/", "http://b/", "http://c/"}, others(urls, "http://d/"))
}

func TestGenerator_LinksCappedByDistinctURLs(t *testing.T) {
	opts := testOptions("")
	opts.Domains = []string{"example.com"}
	pages := NewGenerator(opts).Pages(40)

	distinct := make(map[string]struct{})
	for _, p := range pages {
		distinct[p.URL] = struct{}{}
	}
	for _, p := range pages {
		assert.LessOrEqual(t, len(p.OutboundURLs), len(distinct)-1)
		assert.LessOrEqual(t, len(p.InboundURLs), len(distinct)-1)
		seen := make(map[string]bool)
		for _, u := range p.OutboundURLs {
			assert.False(t, seen[u], "duplicate %s", u)
			seen[u] = true
		}
	}
}

func TestGenerator_SinglePageHasNoLinks(t *testing.T) {
	pages := NewGenerator(testOptions("")).Pages(1)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].OutboundURLs)
	assert.Empty(t, pages[0].InboundURLs)
}

func TestGenerator_CustomDomains(t *testing.T) {
	opts := testOptions("")
	opts.Domains = []string{"blog.example.com"}
	for _, p := range NewGenerator(opts).Pages(10) {
		assert.True(t, strings.HasPrefix(p.RowKey, "com.example.blog_"), p.RowKey)
	}
}

func TestGenerator_Weighted(t *testing.T) {
	g := NewGenerator(testOptions(""))
	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		counts[g.weighted([]float64{92, 6, 2})]++
	}
	assert.Greater(t, counts[0], 8800)
	assert.Greater(t, counts[1], 300)
	assert.Greater(t, counts[2], 50)

	assert.Equal(t, 0, g.weighted([]float64{1}))
}

func TestGenerator_Sample(t *testing.T) {
	g := NewGenerator(testOptions(""))
	got := g.sample([]string{"a", "b", "c"}, 5)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
	assert.Len(t, g.sample([]string{"a", "b", "c"}, 2), 2)
	assert.Empty(t, g.sample(nil, 3))
}
