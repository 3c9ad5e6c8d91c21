package sink

import (
	"github.com/cockroachdb/pebble"

	"webtable/cmdfile"
)

type pebbleSink struct {
	db    *pebble.DB
	batch *pebble.Batch
}

func openPebble(dir string) (Sink, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &pebbleSink{db: db, batch: db.NewBatch()}, nil
}

func (s *pebbleSink) Put(m cmdfile.Mutation) error {
	if s.db == nil {
		return ErrClosed
	}
	if err := s.batch.Set(FlatKey(m), []byte(m.Value), nil); err != nil {
		return err
	}
	if s.batch.Count() >= batchSize {
		return s.flush()
	}
	return nil
}

func (s *pebbleSink) flush() error {
	if s.batch.Count() == 0 {
		return nil
	}
	err := s.batch.Commit(pebble.NoSync)
	_ = s.batch.Close()
	s.batch = s.db.NewBatch()
	return err
}

func (s *pebbleSink) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.flush()
	_ = s.batch.Close()
	if err == nil {
		err = s.db.Flush()
	}
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	s.db = nil
	return err
}
