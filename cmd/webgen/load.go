package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"webtable/cmdfile"
	"webtable/logger"
	"webtable/sink"
)

var loadCmd = &cobra.Command{
	Use:   "load [files...]",
	Short: "Replay load files into an embedded snapshot store",
	Long: `load parses put commands from load files and writes every cell into an
embedded key-value store. Without file arguments all load_*.hbase files of
--in are read.`,
	Example: `  webgen load --format pebble --in ./fixtures --dir ./fixtures/pebble`,
	RunE:    runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.String("format", sink.Bolt, "snapshot format")
	f.String("in", ".", "directory searched for load files when none are given")
	f.String("dir", "snapshot", "snapshot directory")
}

func runLoad(cmd *cobra.Command, files []string) error {
	format, _ := cmd.Flags().GetString("format")
	in, _ := cmd.Flags().GetString("in")
	dir, _ := cmd.Flags().GetString("dir")

	if len(files) == 0 {
		var err error
		files, err = filepath.Glob(filepath.Join(in, "load_*"+cmdfile.FileSuffix))
		if err != nil {
			return err
		}
	}

	s, err := sink.Open(format, dir)
	if err != nil {
		return err
	}
	total, err := loadFiles(s, files)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d commands from %d files into %s snapshot %s", total, len(files), format, dir)
	return nil
}

func loadFiles(s sink.Sink, files []string) (int, error) {
	total := 0
	for _, path := range files {
		n := 0
		err := cmdfile.Scan(path, func(m cmdfile.Mutation) error {
			n++
			return s.Put(m)
		})
		if err != nil {
			return total, err
		}
		logger.Debugf("loaded %d commands from %s", n, path)
		total += n
	}
	return total, nil
}
