//go:build !unix

package memregion

import "fmt"

// Anonymous falls back to a Go-allocated region when anonymous mapping
// is not available. The cleanup function is a no-op.
func Anonymous(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("memregion: invalid region size %d", n)
	}
	return make([]byte, n), func() error { return nil }, nil
}
