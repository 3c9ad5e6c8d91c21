package webtable

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("/tmp/webtable")
	assert.Equal(t, DefaultPageCount, opts.Pages)
	assert.Equal(t, DefaultDomains, opts.Domains)
	assert.NoError(t, opts.Validate())

	// callers may edit the domain list without touching the package default.
	opts.Domains[0] = "changed.example"
	assert.Equal(t, "example.com", DefaultDomains[0])
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr bool
	}{
		{"ok", func(o *Options) {}, false},
		{"no-dir", func(o *Options) { o.OutputDir = "" }, true},
		{"no-pages", func(o *Options) { o.Pages = -1 }, true},
		{"no-domains", func(o *Options) { o.Domains = nil }, true},
		{"blank-domain", func(o *Options) { o.Domains = []string{"web.io", ""} }, true},
		{"bad-zone", func(o *Options) { o.TimeZone = "Mars/Olympus" }, true},
		{"utc", func(o *Options) { o.TimeZone = "UTC" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions("/tmp/webtable")
			tc.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestOptions_Location(t *testing.T) {
	loc, err := Options{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = Options{TimeZone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webgen.yaml")
	content := `
pages: 100
seed: 7
domains: [blog.example.com, docs.example.com]
time_zone: UTC
snapshot_format: bolt
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadOptions(path, "/tmp/out")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", opts.OutputDir)
	assert.Equal(t, 100, opts.Pages)
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, []string{"blog.example.com", "docs.example.com"}, opts.Domains)
	assert.Equal(t, "UTC", opts.TimeZone)
	assert.Equal(t, "bolt", opts.SnapshotFormat)
	assert.Equal(t, DefaultSampleSize, opts.SampleSize)
	assert.NotNil(t, opts.Now)
}

func TestLoadOptions_Errors(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"), "/tmp/out")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pages: [1, 2"), 0644))
	_, err = LoadOptions(path, "/tmp/out")
	assert.Error(t, err)
}
