package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"webtable/shell"
)

var keysCmd = &cobra.Command{
	Use:   "keys command [args...]",
	Short: "Evaluate one shell command, e.g. keys rowkey blog.example.com /x",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := zone(cmd)
		if err != nil {
			return err
		}
		out, err := shell.New(loc).Execute(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	keysCmd.Flags().String("tz", "", "time zone used for time index keys (default Local)")
}
