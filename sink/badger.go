package sink

import (
	"github.com/dgraph-io/badger/v3"

	"webtable/cmdfile"
)

type badgerSink struct {
	db *badger.DB
	wb *badger.WriteBatch
}

func openBadger(dir string) (Sink, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.SyncWrites = false
	opts.NumVersionsToKeep = 1
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &badgerSink{db: db, wb: db.NewWriteBatch()}, nil
}

func (s *badgerSink) Put(m cmdfile.Mutation) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.wb.Set(FlatKey(m), []byte(m.Value))
}

func (s *badgerSink) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.wb.Flush()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	s.db = nil
	return err
}
