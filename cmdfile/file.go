package cmdfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// FileSuffix suffix of every load file.
	FileSuffix = ".hbase"

	// FilePerm permission of newly created load files.
	FilePerm = 0644

	// maxLineSize longest command ReadAll accepts, main table html cells
	// are the largest.
	maxLineSize = 4 << 20
)

// FileName is the load file name of a table type, e.g. load_main_table.hbase.
func FileName(tableType string) string {
	return "load_" + tableType + FileSuffix
}

// File is a load file, commands are appended one per line.
type File struct {
	mu       sync.Mutex
	fd       *os.File
	w        *bufio.Writer
	commands int
	written  int64
}

// Create creates or truncates the load file at path.
func Create(path string) (*File, error) {
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm)
	if err != nil {
		return nil, err
	}
	return &File{fd: fd, w: bufio.NewWriterSize(fd, 64<<10)}, nil
}

// Write appends m as one command line.
func (f *File) Write(m Mutation) error {
	return f.WriteLine(Encode(m))
}

// WriteLine appends an already encoded command.
func (f *File) WriteLine(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.w.WriteString(line)
	if err != nil {
		return err
	}
	if err := f.w.WriteByte('\n'); err != nil {
		return err
	}
	f.commands++
	f.written += int64(n) + 1
	return nil
}

// Commands number of commands written so far.
func (f *File) Commands() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commands
}

// Size number of bytes written so far.
func (f *File) Size() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written
}

// Name path of the underlying file.
func (f *File) Name() string {
	return f.fd.Name()
}

// Sync flushes buffered commands and commits the file to stable storage.
func (f *File) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.w.Flush(); err != nil {
		return err
	}
	return f.fd.Sync()
}

// Close flushes and closes the file.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.w.Flush(); err != nil {
		_ = f.fd.Close()
		return err
	}
	return f.fd.Close()
}

// ReadAll parses every command of the load file at path.
func ReadAll(path string) ([]Mutation, error) {
	var ms []Mutation
	err := Scan(path, func(m Mutation) error {
		ms = append(ms, m)
		return nil
	})
	return ms, err
}

// Scan parses the load file at path line by line and hands each command to fn.
// Blank lines are skipped. Scanning stops at the first error.
func Scan(path string, fn func(m Mutation) error) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	sc := bufio.NewScanner(fd)
	sc.Buffer(make([]byte, 64<<10), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		m, err := Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", filepath.Base(path), lineNo, err)
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return sc.Err()
}
