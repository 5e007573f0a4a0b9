// Package keywordset implements an O(1) membership set of C/C++
// keywords, operators and punctuators, used by pkg/symbolindex to skip
// non-identifier tokens before they ever reach the index.
//
// Grounded on github.com/flier/goutil's pkg/arena/swiss package for its
// hashing vocabulary (maphash.Hasher, reseeding on growth) and on
// original_source/finder.h's cpp_keywords table for the membership list
// itself. The swiss package's full SIMD-probed control-byte table is
// built for a mutable, resizable arena map; a keyword set is populated
// once at startup and never mutated again, so this package keeps only
// the hashing half of that design — maphash.Hasher for speed and DoS
// resistance — over a plain open-addressed table with linear probing
// rather than reproducing the swiss table's group/control-byte layout.
package keywordset

import "github.com/dolthub/maphash"

// Set is a fixed, read-only set of keyword strings.
type Set struct {
	hash    maphash.Hasher[string]
	slots   []string
	present []bool
	count   int
}

// New builds a Set containing every string in words.
func New(words []string) *Set {
	s := &Set{hash: maphash.NewHasher[string]()}
	s.grow(nextPow2(len(words)*2 + 1))
	for _, w := range words {
		s.insert(w)
	}
	return s
}

// Contains reports whether word is in the set.
func (s *Set) Contains(word string) bool {
	if len(s.slots) == 0 {
		return false
	}
	mask := uint64(len(s.slots) - 1)
	i := s.hash.Hash(word) & mask
	for s.present[i] {
		if s.slots[i] == word {
			return true
		}
		i = (i + 1) & mask
	}
	return false
}

func (s *Set) insert(word string) {
	if s.count*2 >= len(s.slots) {
		s.grow(len(s.slots) * 2)
	}
	mask := uint64(len(s.slots) - 1)
	i := s.hash.Hash(word) & mask
	for s.present[i] {
		if s.slots[i] == word {
			return
		}
		i = (i + 1) & mask
	}
	s.slots[i] = word
	s.present[i] = true
	s.count++
}

func (s *Set) grow(capacity int) {
	if capacity < 8 {
		capacity = 8
	}
	old, oldPresent := s.slots, s.present
	s.slots = make([]string, capacity)
	s.present = make([]bool, capacity)
	s.count = 0
	for i, w := range old {
		if oldPresent[i] {
			s.insert(w)
		}
	}
}

func nextPow2(n int) int {
	p := 8
	for p < n {
		p *= 2
	}
	return p
}
