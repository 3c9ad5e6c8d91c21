package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"webtable/shell"
)

const historyFile = ".webgen_history"

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive key derivation shell",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func init() {
	shellCmd.Flags().String("tz", "", "time zone used for time index keys (default Local)")
}

func zone(cmd *cobra.Command) (*time.Location, error) {
	tz, _ := cmd.Flags().GetString("tz")
	if tz == "" || tz == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), historyFile)
	}
	return filepath.Join(home, historyFile)
}

func runShell(cmd *cobra.Command, _ []string) error {
	loc, err := zone(cmd)
	if err != nil {
		return err
	}
	sh := shell.New(loc)
	out := cmd.OutOrStdout()

	line := liner.NewLiner()
	defer line.Close()

	// set Ctrl+C as abort signal.
	line.SetCtrlCAborts(true)
	line.SetCompleter(shell.Complete)

	hist := historyPath()
	if f, err := os.Open(hist); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(hist); err != nil {
			fmt.Fprintln(out, "Error writing history file: ", err)
		} else {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		input, err := line.Prompt("webgen> ")
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D.
			fmt.Fprintln(out, "bye")
			return nil
		}

		input = strings.TrimSpace(input)
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(out, "bye")
			return nil
		}

		result, err := sh.Execute(input)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, result)
		line.AppendHistory(input)
	}
}
