package sink

import (
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"webtable/cmdfile"
)

const boltFileName = "webtable.bolt"

// boltSink keeps one bucket per table, cells keyed by CellKey.
type boltSink struct {
	db      *bolt.DB
	tx      *bolt.Tx
	pending int
}

func openBolt(dir string) (Sink, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	db, err := bolt.Open(filepath.Join(dir, boltFileName), 0644, &bolt.Options{NoSync: true})
	if err != nil {
		return nil, err
	}
	return &boltSink{db: db}, nil
}

func (s *boltSink) Put(m cmdfile.Mutation) error {
	if s.db == nil {
		return ErrClosed
	}
	if s.tx == nil {
		tx, err := s.db.Begin(true)
		if err != nil {
			return err
		}
		s.tx = tx
	}
	bucket, err := s.tx.CreateBucketIfNotExists([]byte(m.Table))
	if err != nil {
		return err
	}
	if err := bucket.Put(CellKey(m), []byte(m.Value)); err != nil {
		return err
	}
	s.pending++
	if s.pending >= batchSize {
		return s.commit()
	}
	return nil
}

func (s *boltSink) commit() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx, s.pending = nil, 0
	return err
}

func (s *boltSink) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.commit()
	if err == nil {
		err = s.db.Sync()
	}
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	s.db = nil
	return err
}
