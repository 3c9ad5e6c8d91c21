package shell

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webtable/keys"
)

func TestShell_Execute(t *testing.T) {
	s := New(time.UTC)
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr error
	}{
		{"empty", "   ", "", nil},
		{"rowkey", "ROWKEY blog.example.com /x", "com.example.blog_x", nil},
		{"rowkey-lower", "rowkey example.com /about", "com.example_about", nil},
		{"rowkey-home", "ROWKEY example.com", "com.example_home", nil},
		{"urlkey", "URLKEY http://example.com/about", keys.URLKey("http://example.com/about"), nil},
		{"sizebucket", "SIZEBUCKET 2500", "medium_010KB", nil},
		{"linkbucket", "LINKBUCKET 11", "99", nil},
		{"rowkey-arity", "ROWKEY a b c", "", ErrArgsNumNotMatch},
		{"urlkey-arity", "URLKEY", "", ErrArgsNumNotMatch},
		{"keys-arity", "KEYS example.com /about 2500", "", ErrArgsNumNotMatch},
		{"unknown", "SCAN webtable", "", ErrCmdNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Execute(tc.line)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShell_ExecuteBadNumbers(t *testing.T) {
	s := New(time.UTC)
	_, err := s.Execute("SIZEBUCKET big")
	assert.ErrorContains(t, err, "bytes")
	_, err = s.Execute("LINKBUCKET many")
	assert.ErrorContains(t, err, "count")
	_, err = s.Execute("KEYS example.com /about 2500 1 x 1710504000")
	assert.ErrorContains(t, err, "outlinks")
}

func TestShell_Keys(t *testing.T) {
	ts := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC).Unix()
	out, err := New(time.UTC).Execute("KEYS example.com /about 2500 1 7 " + strconv.FormatInt(ts, 10))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "row_key:           com.example_about", lines[0])
	assert.Equal(t, "time_index_key:    20240315_com.example_about", lines[1])
	assert.Equal(t, "size_index_key:    medium_010KB_com.example_about", lines[2])
	assert.Equal(t, "inlink_index_key:  inlinks_02_com.example_about", lines[3])
	assert.Equal(t, "outlink_index_key: outlinks_10_com.example_about", lines[4])
	assert.Equal(t, "url_index_key:     "+keys.URLKey("http://example.com/about"), lines[5])
}

func TestShell_KeysEpoch(t *testing.T) {
	out, err := New(time.UTC).Execute("KEYS example.com /about 2500 1 7 0")
	require.NoError(t, err)
	assert.Contains(t, out, "time_index_key:    19700101_com.example_about")
}

func TestShell_KeysPathWithoutSlash(t *testing.T) {
	out, err := New(time.UTC).Execute("KEYS example.com about 2500 1 7 0")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "row_key:           com.example_about", lines[0])
	assert.Equal(t, "url_index_key:     "+keys.URLKey("http://example.com/about"), lines[5])
}

func TestComplete(t *testing.T) {
	assert.Equal(t, []string{ROWKEY}, Complete("ro"))
	assert.Equal(t, []string{KEYS}, Complete("K"))
	assert.Len(t, Complete(""), len(Commands))
	assert.Empty(t, Complete("x"))
}

func TestHelp(t *testing.T) {
	h := Help()
	assert.Len(t, strings.Split(h, "\n"), len(helpList))
	assert.True(t, strings.HasPrefix(h, "HELP"))
}
