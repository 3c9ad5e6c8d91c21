package benchmark

import (
	"testing"

	"webtable/sink"
)

func BenchmarkBolt_Put(b *testing.B) {
	benchmarkSink(b, sink.Bolt)
}

func BenchmarkBolt_Load(b *testing.B) {
	benchmarkLoad(b, sink.Bolt, benchMutations)
}
