package webtable

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidPageCount page count must be positive.
	ErrInvalidPageCount = errors.New("page count must be positive")

	// ErrNoDomains at least one domain is needed to place pages on.
	ErrNoDomains = errors.New("domain list is empty")
)

const (
	// DefaultPageCount pages generated when none are asked for.
	DefaultPageCount = 25

	// DefaultSampleSize pages listed in the summary.
	DefaultSampleSize = 5

	// SummaryFileName name of the summary written next to the load files.
	SummaryFileName = "dataset_summary.json"

	lockFileName = "GENERATE.LOCK"
)

// DefaultDomains hosts pages are spread across.
var DefaultDomains = []string{"example.com", "test.org", "demo.net", "sample.co", "web.io"}

// Options for generating a dataset.
type Options struct {
	// OutputDir directory the load files and summary are written to.
	OutputDir string `yaml:"output_dir"`

	// Pages number of pages to generate.
	Pages int `yaml:"pages"`

	// Seed seeds both the random source and the fake text generator.
	// Equal seeds and equal Now produce byte identical output.
	Seed int64 `yaml:"seed"`

	// Domains pages are drawn uniformly from these hosts.
	Domains []string `yaml:"domains"`

	// TimeZone IANA name used to date time index keys, "Local" by default.
	TimeZone string `yaml:"time_zone"`

	// SampleSize number of leading pages described in the summary.
	SampleSize int `yaml:"sample_size"`

	// SnapshotFormat optional embedded store the mutations are also exported to,
	// see sink.Formats. Empty disables the export.
	SnapshotFormat string `yaml:"snapshot_format"`

	// SnapshotDir directory of the snapshot store, OutputDir/snapshot by default.
	SnapshotDir string `yaml:"snapshot_dir"`

	// Now is the reference time last-modified dates are counted back from.
	Now func() time.Time `yaml:"-"`
}

// DefaultOptions default options for generating into dir.
func DefaultOptions(dir string) Options {
	return Options{
		OutputDir:  dir,
		Pages:      DefaultPageCount,
		Seed:       time.Now().UnixNano(),
		Domains:    append([]string(nil), DefaultDomains...),
		TimeZone:   "Local",
		SampleSize: DefaultSampleSize,
		Now:        time.Now,
	}
}

// LoadOptions reads a yaml options file over DefaultOptions(dir).
// Keys missing from the file keep their defaults.
func LoadOptions(path, dir string) (Options, error) {
	opts := DefaultOptions(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file: %w", err)
	}
	return opts, opts.Validate()
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	if o.OutputDir == "" {
		return errors.New("output dir is empty")
	}
	if o.Pages <= 0 {
		return ErrInvalidPageCount
	}
	if len(o.Domains) == 0 {
		return ErrNoDomains
	}
	for _, d := range o.Domains {
		if d == "" {
			return fmt.Errorf("%w: blank entry", ErrNoDomains)
		}
	}
	if _, err := o.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone.
func (o Options) Location() (*time.Location, error) {
	if o.TimeZone == "" || o.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", o.TimeZone, err)
	}
	return loc, nil
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}
