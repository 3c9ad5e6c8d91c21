package webtable

import (
	"os"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"

	"webtable/page"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Summary describes a generated dataset, written as dataset_summary.json.
type Summary struct {
	TotalPages       int              `json:"total_pages"`
	Domains          []string         `json:"domains"`
	PageTypes        []string         `json:"page_types"`
	SizeDistribution SizeDistribution `json:"size_distribution"`
	SamplePages      []SamplePage     `json:"sample_pages"`
	RunID            string           `json:"run_id,omitempty"`
	Seed             int64            `json:"seed"`
	GeneratedAt      string           `json:"generated_at,omitempty"`
	Files            map[string]int   `json:"files,omitempty"`
}

// SizeDistribution page counts per size class.
type SizeDistribution struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
	Huge   int `json:"huge"`
}

// SamplePage short description of one page.
type SamplePage struct {
	RowKey   string `json:"row_key"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Size     int64  `json:"size"`
	LinksIn  int    `json:"links_in"`
	LinksOut int    `json:"links_out"`
}

// Summarize builds the summary of pages, describing the first sampleSize.
func Summarize(pages []*page.Page, sampleSize int) *Summary {
	s := &Summary{TotalPages: len(pages)}

	domains := make(map[string]struct{})
	types := make(map[string]struct{})
	for _, p := range pages {
		domains[p.Domain] = struct{}{}
		types[p.Type.String()] = struct{}{}
		switch p.SizeClass() {
		case page.ClassSmall:
			s.SizeDistribution.Small++
		case page.ClassMedium:
			s.SizeDistribution.Medium++
		case page.ClassLarge:
			s.SizeDistribution.Large++
		case page.ClassHuge:
			s.SizeDistribution.Huge++
		}
	}
	s.Domains = sortedKeys(domains)
	s.PageTypes = sortedKeys(types)

	if sampleSize > len(pages) {
		sampleSize = len(pages)
	}
	s.SamplePages = make([]SamplePage, 0, sampleSize)
	for _, p := range pages[:sampleSize] {
		s.SamplePages = append(s.SamplePages, SamplePage{
			RowKey:   p.RowKey,
			URL:      p.URL,
			Title:    p.Title,
			Size:     p.ContentSize,
			LinksIn:  p.Inlinks,
			LinksOut: p.Outlinks,
		})
	}
	return s
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteFile writes the summary as indented json.
func (s *Summary) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadSummary loads a summary written by WriteFile.
func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := new(Summary)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
