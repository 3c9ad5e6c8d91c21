package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"webtable"
	"webtable/logger"
	"webtable/sink"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate pages and write load files and summary",
	Example: `  webgen generate --out ./fixtures --pages 100 --seed 7
  webgen generate --config webgen.yaml --snapshot bolt`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("out", "o", ".", "output directory")
	f.StringP("config", "c", "", "yaml options file")
	f.IntP("pages", "n", webtable.DefaultPageCount, "number of pages")
	f.Int64("seed", 0, "random seed (default: time based)")
	f.StringSlice("domains", nil, "domains to spread pages across")
	f.String("tz", "", "time zone used for time index keys (default Local)")
	f.Int("samples", webtable.DefaultSampleSize, "pages listed in the summary")
	f.String("snapshot", "", "also export to an embedded store: "+strings.Join(sink.Formats(), ", "))
	f.String("snapshot-dir", "", "snapshot directory (default <out>/snapshot)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	out, _ := f.GetString("out")

	opts := webtable.DefaultOptions(out)
	if path, _ := f.GetString("config"); path != "" {
		var err error
		if opts, err = webtable.LoadOptions(path, out); err != nil {
			return err
		}
	}

	// flags given explicitly win over the options file.
	if f.Changed("pages") {
		opts.Pages, _ = f.GetInt("pages")
	}
	if f.Changed("seed") {
		opts.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("domains") {
		opts.Domains, _ = f.GetStringSlice("domains")
	}
	if f.Changed("tz") {
		opts.TimeZone, _ = f.GetString("tz")
	}
	if f.Changed("samples") {
		opts.SampleSize, _ = f.GetInt("samples")
	}
	if f.Changed("snapshot") {
		opts.SnapshotFormat, _ = f.GetString("snapshot")
	}
	if f.Changed("snapshot-dir") {
		opts.SnapshotDir, _ = f.GetString("snapshot-dir")
	}

	s, err := webtable.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	logger.Infof("Dataset summary: %d pages, %d domains, seed %d", s.TotalPages, len(s.Domains), s.Seed)
	fmt.Fprintf(cmd.OutOrStdout(), "- %d pages generated\n", s.TotalPages)
	fmt.Fprintf(cmd.OutOrStdout(), "- %d domains\n", len(s.Domains))
	fmt.Fprintf(cmd.OutOrStdout(), "- Size distribution: small=%d medium=%d large=%d huge=%d\n",
		s.SizeDistribution.Small, s.SizeDistribution.Medium, s.SizeDistribution.Large, s.SizeDistribution.Huge)
	return nil
}
