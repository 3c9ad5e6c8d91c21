package main

import (
	"context"
	"fmt"
	"os"

	"webtable"
)

func main() {
	// generate into a temporary dir with default options.
	path, err := os.MkdirTemp("", "webtable")
	if err != nil {
		panic(err)
	}
	opts := webtable.DefaultOptions(path)
	// a fixed seed makes the load files reproducible.
	opts.Seed = 7
	opts.Pages = 50

	summary, err := webtable.Run(context.Background(), opts)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d pages written to %s\n", summary.TotalPages, path)
}
