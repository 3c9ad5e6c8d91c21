package cmdfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCommand line is not a put command.
	ErrInvalidCommand = errors.New("cmdfile: invalid command")
)

const (
	putPrefix = "put "
	fieldSep  = "', '"
)

// Mutation is one cell write: value under row, column ("family:qualifier") of table.
type Mutation struct {
	Table  string
	Row    string
	Column string
	Value  string
}

// Family returns the column family part of the column.
func (m Mutation) Family() string {
	family, _, _ := strings.Cut(m.Column, ":")
	return family
}

// Encode renders m as a shell put command:
//
//	put 'table', 'row', 'family:qualifier', 'value'
//
// Fields are written verbatim. Only the value may contain a single quote and
// still parse back, callers replace quotes in free text beforehand.
func Encode(m Mutation) string {
	var b strings.Builder
	b.Grow(len(putPrefix) + len(m.Table) + len(m.Row) + len(m.Column) + len(m.Value) + 14)
	b.WriteString(putPrefix)
	b.WriteByte('\'')
	b.WriteString(m.Table)
	b.WriteString(fieldSep)
	b.WriteString(m.Row)
	b.WriteString(fieldSep)
	b.WriteString(m.Column)
	b.WriteString(fieldSep)
	b.WriteString(m.Value)
	b.WriteByte('\'')
	return b.String()
}

// Parse reads a line produced by Encode.
func Parse(line string) (Mutation, error) {
	rest, ok := strings.CutPrefix(strings.TrimRight(line, "\r\n"), putPrefix)
	if !ok {
		return Mutation{}, fmt.Errorf("%w: %.40q", ErrInvalidCommand, line)
	}

	var fields [3]string
	for i := range fields {
		if !strings.HasPrefix(rest, "'") {
			return Mutation{}, fmt.Errorf("%w: field %d not quoted", ErrInvalidCommand, i)
		}
		end := strings.Index(rest[1:], fieldSep)
		if end < 0 {
			return Mutation{}, fmt.Errorf("%w: want 4 fields, got %d", ErrInvalidCommand, i+1)
		}
		fields[i] = rest[1 : end+1]
		rest = rest[end+4:]
	}
	if len(rest) < 2 || rest[0] != '\'' || rest[len(rest)-1] != '\'' {
		return Mutation{}, fmt.Errorf("%w: value not quoted", ErrInvalidCommand)
	}

	return Mutation{
		Table:  fields[0],
		Row:    fields[1],
		Column: fields[2],
		Value:  rest[1 : len(rest)-1],
	}, nil
}
