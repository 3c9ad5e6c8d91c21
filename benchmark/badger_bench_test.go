package benchmark

import (
	"testing"

	"webtable/sink"
)

func BenchmarkBadger_Put(b *testing.B) {
	benchmarkSink(b, sink.Badger)
}

func BenchmarkBadger_Load(b *testing.B) {
	benchmarkLoad(b, sink.Badger, benchMutations)
}
