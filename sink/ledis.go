package sink

import (
	"github.com/ledisdb/ledisdb/config"
	"github.com/ledisdb/ledisdb/ledis"

	"webtable/cmdfile"
)

// ledisSink stores each row as a hash keyed by table and row, one field per column.
type ledisSink struct {
	l  *ledis.Ledis
	db *ledis.DB
}

func openLedis(dir string) (Sink, error) {
	cfg := config.NewConfigDefault()
	cfg.DataDir = dir
	l, err := ledis.Open(cfg)
	if err != nil {
		return nil, err
	}
	db, err := l.Select(0)
	if err != nil {
		l.Close()
		return nil, err
	}
	return &ledisSink{l: l, db: db}, nil
}

// HashKey is the ledis hash holding the cells of m's row.
func HashKey(m cmdfile.Mutation) []byte {
	return join(m.Table, m.Row)
}

func (s *ledisSink) Put(m cmdfile.Mutation) error {
	if s.l == nil {
		return ErrClosed
	}
	_, err := s.db.HSet(HashKey(m), []byte(m.Column), []byte(m.Value))
	return err
}

func (s *ledisSink) Close() error {
	if s.l == nil {
		return ErrClosed
	}
	s.l.Close()
	s.l, s.db = nil, nil
	return nil
}
