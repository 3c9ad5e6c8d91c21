package main

import (
	"context"
	"os"
	"path/filepath"

	"webtable"
	"webtable/sink"
)

func main() {
	path, err := os.MkdirTemp("", "webtable")
	if err != nil {
		panic(err)
	}
	ds, err := webtable.Open(webtable.DefaultOptions(path))
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = ds.Close()
	}()

	if err := ds.Generate(); err != nil {
		panic(err)
	}

	// every table becomes a bolt bucket.
	s, err := sink.Open(sink.Bolt, filepath.Join(path, "bolt"))
	if err != nil {
		panic(err)
	}
	if _, err := ds.Export(context.Background(), s); err != nil {
		panic(err)
	}
	if err := s.Close(); err != nil {
		panic(err)
	}
}
