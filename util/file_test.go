package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathExist(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, PathExist(dir))
	assert.False(t, PathExist(filepath.Join(dir, "missing")))
}
