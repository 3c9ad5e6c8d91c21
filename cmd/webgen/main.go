package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"webtable/logger"
)

var rootCmd = &cobra.Command{
	Use:   "webgen",
	Short: "Generate synthetic web crawl fixtures for a wide-column store",
	Long: `webgen generates synthetic crawled pages and writes load command files
for the webtable main table and its time, size, link and url index tables,
plus a json summary of the dataset.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			logger.SetLevelByString(level)
		}
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL or info)")

	rootCmd.AddCommand(generateCmd, loadCmd, keysCmd, shellCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
