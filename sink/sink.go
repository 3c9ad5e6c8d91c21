// Package sink exports generated mutations into an embedded key-value store,
// so a fixture can be shipped already loaded next to its load files.
//
// Wide-column cells are flattened. Stores with buckets or hashes keep the
// table (and for ledis the row) as the namespace, flat stores prefix the key.
package sink

import (
	"errors"
	"fmt"
	"sort"

	"webtable/cmdfile"
)

var (
	// ErrUnknownFormat snapshot format is not supported.
	ErrUnknownFormat = errors.New("sink: unknown format")

	// ErrClosed sink was already closed.
	ErrClosed = errors.New("sink: closed")
)

// Supported snapshot formats.
const (
	Bolt    = "bolt"
	Badger  = "badger"
	LevelDB = "leveldb"
	Pebble  = "pebble"
	Ledis   = "ledis"
)

// keySep separates key parts, none of the generated keys contain it.
const keySep = 0x00

// batchSize writes buffered before a batch is committed.
const batchSize = 1000

// Sink receives mutations. Implementations are not safe for concurrent use.
type Sink interface {
	// Put writes one cell.
	Put(m cmdfile.Mutation) error

	// Close commits pending writes and releases the store.
	Close() error
}

type opener func(dir string) (Sink, error)

var openers = map[string]opener{
	Bolt:    openBolt,
	Badger:  openBadger,
	LevelDB: openLevelDB,
	Pebble:  openPebble,
	Ledis:   openLedis,
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(openers))
	for f := range openers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Open creates a sink of the given format storing its files under dir.
func Open(format, dir string) (Sink, error) {
	open, ok := openers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	s, err := open(dir)
	if err != nil {
		return nil, fmt.Errorf("open %s sink: %w", format, err)
	}
	return s, nil
}

// CellKey is row and column joined, the key inside a per-table namespace.
func CellKey(m cmdfile.Mutation) []byte {
	return join(m.Row, m.Column)
}

// FlatKey is table, row and column joined, for stores without namespaces.
func FlatKey(m cmdfile.Mutation) []byte {
	return join(m.Table, m.Row, m.Column)
}

func join(parts ...string) []byte {
	n := len(parts) - 1
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, keySep)
		}
		buf = append(buf, p...)
	}
	return buf
}
