package sink

import (
	"github.com/syndtr/goleveldb/leveldb"

	"webtable/cmdfile"
)

type levelDBSink struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func openLevelDB(dir string) (Sink, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &levelDBSink{db: db, batch: new(leveldb.Batch)}, nil
}

func (s *levelDBSink) Put(m cmdfile.Mutation) error {
	if s.db == nil {
		return ErrClosed
	}
	s.batch.Put(FlatKey(m), []byte(m.Value))
	if s.batch.Len() >= batchSize {
		return s.flush()
	}
	return nil
}

func (s *levelDBSink) flush() error {
	if s.batch.Len() == 0 {
		return nil
	}
	err := s.db.Write(s.batch, nil)
	s.batch.Reset()
	return err
}

func (s *levelDBSink) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.flush()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	s.db = nil
	return err
}
