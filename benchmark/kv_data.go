package benchmark

import (
	"time"

	"webtable"
	"webtable/cmdfile"
	"webtable/keys"
	"webtable/page"
)

// benchSeed keeps every benchmark run on the same pages.
const benchSeed = 20240315

var benchNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// GetPages generates n pages from the fixed benchmark seed.
func GetPages(n int) []*page.Page {
	opts := webtable.DefaultOptions("")
	opts.Seed = benchSeed
	opts.Now = func() time.Time { return benchNow }
	return webtable.NewGenerator(opts).Pages(n)
}

// GetMutations lays out n pages into all five tables and flattens them in
// table order.
func GetMutations(n int) []cmdfile.Mutation {
	ts, err := webtable.BuildTables(keys.NewDeriver(time.UTC), GetPages(n))
	if err != nil {
		panic(err)
	}
	ms := make([]cmdfile.Mutation, 0, ts.Len())
	for _, typ := range webtable.TableTypes {
		ms = append(ms, ts[typ].Mutations...)
	}
	return ms
}
