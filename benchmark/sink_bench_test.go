package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webtable/cmdfile"
	"webtable/sink"
)

// benchPages pages behind the mutations replayed by every sink benchmark.
const benchPages = 200

var benchMutations = GetMutations(benchPages)

func benchmarkSink(b *testing.B, format string) {
	s, err := sink.Open(format, b.TempDir())
	if err != nil {
		b.Fatalf("open %s sink: %+v", format, err)
	}
	defer func() {
		assert.Nil(b, s.Close())
	}()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := benchMutations[i%len(benchMutations)]
		err := s.Put(m)
		assert.Nil(b, err)
	}
}

func benchmarkLoad(b *testing.B, format string, ms []cmdfile.Mutation) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s, err := sink.Open(format, b.TempDir())
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		for _, m := range ms {
			if err := s.Put(m); err != nil {
				b.Fatal(err)
			}
		}
		assert.Nil(b, s.Close())
	}
}
