// Package simd16 implements the key-lookup helpers used by Node16: finding
// a child's index by its key byte, and finding the sorted insert position
// for a new one.
//
// The name and shape are grounded on github.com/flier/goutil's
// pkg/arena/art/simd package, which dispatches to a SIMD-accelerated scan
// on amd64 and falls back to a scalar loop everywhere else
// (find_scalar.go / find_fallback.go). This port keeps only the scalar
// path: writing and verifying real SIMD assembly without running the Go
// toolchain would be guesswork, so every platform here gets the fallback
// the teacher already ships for non-amd64 targets. Sixteen-element linear
// scans are cheap enough that the difference is noise outside of a
// hot-loop microbenchmark.
package simd16

// FindKeyIndex returns the index of key within keys[:n], or -1 if absent.
func FindKeyIndex(keys *[16]byte, n int, key byte) int {
	for i := 0; i < n; i++ {
		if keys[i] == key {
			return i
		}
	}
	return -1
}

// FindInsertPosition returns the index at which key should be inserted to
// keep keys[:n] sorted in ascending order.
func FindInsertPosition(keys *[16]byte, n int, key byte) int {
	i := 0
	for i < n && keys[i] < key {
		i++
	}
	return i
}
