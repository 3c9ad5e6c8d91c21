// Package shell evaluates the key derivation commands of the interactive shell.
package shell

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"webtable/keys"
	"webtable/page"
)

const (
	// ROWKEY derive a row key.
	ROWKEY = "ROWKEY"
	// URLKEY derive a url index key.
	URLKEY = "URLKEY"
	// SIZEBUCKET label a content size.
	SIZEBUCKET = "SIZEBUCKET"
	// LINKBUCKET label a link count.
	LINKBUCKET = "LINKBUCKET"
	// KEYS derive every key of a page.
	KEYS = "KEYS"
	// HELP list commands.
	HELP = "HELP"
)

var (
	// ErrArgsNumNotMatch number of args not match.
	ErrArgsNumNotMatch = errors.New("the number of args not match")
	// ErrCmdNotFound the command not found error.
	ErrCmdNotFound = errors.New("the command not found")
)

// Commands all supported commands with their syntax.
var Commands = [][]string{
	{ROWKEY, "domain path"},
	{URLKEY, "url"},
	{SIZEBUCKET, "bytes"},
	{LINKBUCKET, "count"},
	{KEYS, "domain path bytes inlinks outlinks unix_ts"},
	{HELP, ""},
}

var helpList = map[string]string{
	ROWKEY:     "ROWKEY domain path                                  summary: Main table row key of a page",
	URLKEY:     "URLKEY url                                          summary: Url index key of a full url",
	SIZEBUCKET: "SIZEBUCKET bytes                                    summary: Size index bucket of a content size",
	LINKBUCKET: "LINKBUCKET count                                    summary: Link index bucket of a link count",
	KEYS:       "KEYS domain path bytes inlinks outlinks unix_ts     summary: Row key and all index keys of a page",
	HELP:       "HELP                                                summary: To get help about shell commands",
}

// Shell evaluates commands, dating time keys with its deriver.
type Shell struct {
	deriver *keys.Deriver
}

// New creates a Shell, loc is used for time index keys.
func New(loc *time.Location) *Shell {
	return &Shell{deriver: keys.NewDeriver(loc)}
}

// Complete returns the command names starting with prefix, case-insensitively.
func Complete(prefix string) []string {
	var c []string
	for _, cmd := range Commands {
		if strings.HasPrefix(cmd[0], strings.ToUpper(prefix)) {
			c = append(c, cmd[0])
		}
	}
	return c
}

// Help returns the usage lines sorted by command.
func Help() string {
	lines := make([]string, 0, len(helpList))
	for _, v := range helpList {
		lines = append(lines, v)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// Execute runs one command line and returns its output.
func (s *Shell) Execute(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	name := args[0]
	cmd, args := strings.ToUpper(name), args[1:]

	switch cmd {
	case ROWKEY:
		if len(args) == 1 {
			// a bare domain is its home page.
			args = append(args, "/")
		}
		if err := check(args, 2); err != nil {
			return "", err
		}
		return keys.RowKey(args[0], args[1]), nil
	case URLKEY:
		if err := check(args, 1); err != nil {
			return "", err
		}
		return keys.URLKey(args[0]), nil
	case SIZEBUCKET:
		if err := check(args, 1); err != nil {
			return "", err
		}
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return "", fmt.Errorf("bytes: %w", err)
		}
		return keys.SizeBucket(n), nil
	case LINKBUCKET:
		if err := check(args, 1); err != nil {
			return "", err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("count: %w", err)
		}
		return keys.LinkBucket(n), nil
	case KEYS:
		if err := check(args, 6); err != nil {
			return "", err
		}
		return s.keys(args)
	case HELP:
		return Help(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrCmdNotFound, name)
}

func (s *Shell) keys(args []string) (string, error) {
	nums := make([]int64, 4)
	names := []string{"bytes", "inlinks", "outlinks", "unix_ts"}
	for i, a := range args[2:] {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%s: %w", names[i], err)
		}
		nums[i] = n
	}

	domain, path := args[0], args[1]
	p := &page.Page{
		Domain:       domain,
		Path:         path,
		URL:          page.URLFor(domain, path),
		ContentSize:  nums[0],
		Inlinks:      int(nums[1]),
		Outlinks:     int(nums[2]),
		LastModified: page.Unix(nums[3]),
	}
	set, err := s.deriver.IndexKeys(p)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{
		"row_key:           " + keys.RowKey(domain, path),
		"time_index_key:    " + set.TimeKey,
		"size_index_key:    " + set.SizeKey,
		"inlink_index_key:  " + set.InlinkKey,
		"outlink_index_key: " + set.OutlinkKey,
		"url_index_key:     " + set.URLKey,
	}, "\n"), nil
}

// check checks if number of arguments is correct.
func check(args []string, num int) error {
	if len(args) != num {
		return fmt.Errorf("%w: want %d, got %d", ErrArgsNumNotMatch, num, len(args))
	}
	return nil
}
