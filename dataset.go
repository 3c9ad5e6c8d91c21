package webtable

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"webtable/cmdfile"
	"webtable/flock"
	"webtable/keys"
	"webtable/logger"
	"webtable/page"
	"webtable/sink"
	"webtable/util"
)

var (
	// ErrNotGenerated files or summary were asked for before Generate.
	ErrNotGenerated = errors.New("dataset not generated yet")

	// ErrDatasetClosed the dataset was already closed.
	ErrDatasetClosed = errors.New("dataset is closed")
)

// Dataset is one generation run writing into an output directory.
// The directory is locked from Open to Close.
type Dataset struct {
	opts    Options
	runID   string
	deriver *keys.Deriver
	lock    *flock.FileLockGuard
	pages   []*page.Page
	tables  Tables
	files   map[string]int
	mu      sync.Mutex
	closed  bool
}

// Open validates opts, creates the output directory and locks it.
func Open(opts Options) (*Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	loc, err := opts.Location()
	if err != nil {
		return nil, err
	}
	if !util.PathExist(opts.OutputDir) {
		if err := os.MkdirAll(opts.OutputDir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	lock, err := flock.AcquireFileLock(filepath.Join(opts.OutputDir, lockFileName), false)
	if err != nil {
		return nil, fmt.Errorf("another generator is using dir %s: %w", opts.OutputDir, err)
	}
	return &Dataset{
		opts:    opts,
		runID:   uuid.NewString(),
		deriver: keys.NewDeriver(loc),
		lock:    lock,
		files:   make(map[string]int),
	}, nil
}

// Generate creates the pages and lays out the table batches.
func (ds *Dataset) Generate() error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.closed {
		return ErrDatasetClosed
	}

	pages := NewGenerator(ds.opts).Pages(ds.opts.Pages)
	tables, err := BuildTables(ds.deriver, pages)
	if err != nil {
		return err
	}
	ds.pages, ds.tables = pages, tables
	logger.Debugf("generated %d pages, %d mutations", len(pages), tables.Len())
	return nil
}

// Pages generated pages, nil before Generate.
func (ds *Dataset) Pages() []*page.Page {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.pages
}

// Tables generated batches, nil before Generate.
func (ds *Dataset) Tables() Tables {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.tables
}

// WriteFiles writes one load file per table, tables are written concurrently.
func (ds *Dataset) WriteFiles(ctx context.Context) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.closed {
		return ErrDatasetClosed
	}
	if ds.tables == nil {
		return ErrNotGenerated
	}

	type result struct {
		name     string
		commands int
	}
	results := make([]result, len(TableTypes))

	g, ctx := errgroup.WithContext(ctx)
	for i, typ := range TableTypes {
		i, table := i, ds.tables[typ]
		g.Go(func() error {
			name := cmdfile.FileName(table.Type)
			n, size, err := writeTable(ctx, filepath.Join(ds.opts.OutputDir, name), table)
			if err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			results[i] = result{name: name, commands: n}
			logger.Infof("Generated %s with %d commands (%s)", name, n, humanize.Bytes(uint64(size)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, r := range results {
		ds.files[r.name] = r.commands
	}
	return flock.SyncDir(ds.opts.OutputDir)
}

func writeTable(ctx context.Context, path string, t *Table) (int, int64, error) {
	f, err := cmdfile.Create(path)
	if err != nil {
		return 0, 0, err
	}
	for i, m := range t.Mutations {
		if i%batchCheck == 0 {
			if err := ctx.Err(); err != nil {
				_ = f.Close()
				return 0, 0, err
			}
		}
		if err := f.Write(m); err != nil {
			_ = f.Close()
			return 0, 0, err
		}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return 0, 0, err
	}
	return f.Commands(), f.Size(), f.Close()
}

// batchCheck mutations written between context checks.
const batchCheck = 512

// Summary describes the generated pages.
func (ds *Dataset) Summary() (*Summary, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.pages == nil {
		return nil, ErrNotGenerated
	}
	s := Summarize(ds.pages, ds.opts.SampleSize)
	s.RunID = ds.runID
	s.Seed = ds.opts.Seed
	s.GeneratedAt = stamp(ds.opts.now())
	if len(ds.files) > 0 {
		s.Files = make(map[string]int, len(ds.files))
		for k, v := range ds.files {
			s.Files[k] = v
		}
	}
	return s, nil
}

// WriteSummary writes dataset_summary.json into the output directory.
func (ds *Dataset) WriteSummary() (*Summary, error) {
	s, err := ds.Summary()
	if err != nil {
		return nil, err
	}
	if err := s.WriteFile(filepath.Join(ds.opts.OutputDir, SummaryFileName)); err != nil {
		return nil, err
	}
	return s, nil
}

// Export replays every mutation, table by table, into s. s is not closed.
func (ds *Dataset) Export(ctx context.Context, s sink.Sink) (int, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.tables == nil {
		return 0, ErrNotGenerated
	}
	n := 0
	for _, typ := range TableTypes {
		for _, m := range ds.tables[typ].Mutations {
			if n%batchCheck == 0 {
				if err := ctx.Err(); err != nil {
					return n, err
				}
			}
			if err := s.Put(m); err != nil {
				return n, fmt.Errorf("export %s: %w", typ, err)
			}
			n++
		}
	}
	return n, nil
}

// Close removes the lock file and releases the output directory lock.
func (ds *Dataset) Close() error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.closed {
		return nil
	}
	ds.closed = true
	err := os.Remove(filepath.Join(ds.opts.OutputDir, lockFileName))
	if errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	if rerr := ds.lock.Release(); err == nil {
		err = rerr
	}
	return err
}

// Run generates a dataset with opts: load files, summary and, when
// opts.SnapshotFormat is set, a snapshot store.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	ds, err := Open(opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := ds.Close(); err != nil {
			logger.Warnf("release %s: %v", opts.OutputDir, err)
		}
	}()

	if err := ds.Generate(); err != nil {
		return nil, err
	}
	if err := ds.WriteFiles(ctx); err != nil {
		return nil, err
	}
	if opts.SnapshotFormat != "" {
		if err := ds.snapshot(ctx); err != nil {
			return nil, err
		}
	}
	return ds.WriteSummary()
}

func (ds *Dataset) snapshot(ctx context.Context) error {
	dir := ds.opts.SnapshotDir
	if dir == "" {
		dir = filepath.Join(ds.opts.OutputDir, "snapshot")
	}
	s, err := sink.Open(ds.opts.SnapshotFormat, dir)
	if err != nil {
		return err
	}
	n, err := ds.Export(ctx, s)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Infof("Exported %d mutations to %s snapshot %s", n, ds.opts.SnapshotFormat, dir)
	return nil
}
