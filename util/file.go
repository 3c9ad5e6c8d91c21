package util

import "os"

// PathExist reports whether path exists. Any stat error other than
// not-exist is treated as existing.
func PathExist(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}
