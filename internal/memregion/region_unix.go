//go:build unix

package memregion

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Anonymous maps n bytes of private anonymous memory and returns the
// region along with a cleanup function that unmaps it. The caller owns
// the region and must call cleanup when done; double-unmap is a no-op.
func Anonymous(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("memregion: invalid region size %d", n)
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
	return data, cleanup, nil
}
