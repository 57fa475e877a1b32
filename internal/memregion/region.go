// Package memregion provides platform-specific helpers for provisioning
// the caller-owned byte regions a pool is built over. The pool itself
// never provisions or releases memory; these helpers exist so callers
// have realistic region sources (Go heap or anonymous mappings).
package memregion

// Heap returns a Go-allocated region of n bytes. The garbage collector
// manages its lifetime; no cleanup is required.
func Heap(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}
