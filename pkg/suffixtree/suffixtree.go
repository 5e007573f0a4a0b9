// Package suffixtree implements the adaptive suffix tree (AST): an
// adaptive radix tree over every suffix of every inserted key, turning
// "does this string occur anywhere in an indexed key" into a single
// prefix walk.
//
// Grounded on original_source/ast.h and spec section 4.4; built directly
// on internal/art rather than duplicating its node machinery, since the
// only thing an AST adds on top of a plain ART is multi-valued leaves
// (several original keys can share an identical suffix). That extra
// fan-out is modeled here as the leaf's value type, refSet[V], rather
// than as a fourth node shape — internal/artnode's Leaf already holds one
// value of any type, and refSet supplies the "inline ref, spill to a
// slice on the second occurrence" behavior the original's heap-promotion
// scheme describes.
package suffixtree

import (
	"github.com/alcolic-to/finder-sub000/internal/art"
	"github.com/alcolic-to/finder-sub000/internal/keyarena"
)

// entry pairs a key-ref (the arena-backed suffix location) with the
// caller's value for that original key.
type entry[V comparable] struct {
	ref   keyarena.Ref
	value V
}

// refSet is an AST leaf's payload: the key-refs that all dereference to
// the same suffix bytes. The first occurrence is stored inline; a second
// distinct original sharing the suffix spills into rest, mirroring the
// original's promote-inline-ref-to-heap-leaf behavior without an explicit
// tag bit — an empty rest slice with n==1 is the inline case.
type refSet[V comparable] struct {
	first entry[V]
	rest  []entry[V]
	n     int
}

func (s *refSet[V]) add(e entry[V]) {
	if s.n == 0 {
		s.first = e
	} else {
		s.rest = append(s.rest, e)
	}
	s.n++
}

func (s *refSet[V]) remove(value V) bool {
	if s.n == 0 {
		return false
	}
	if s.first.value == value {
		if len(s.rest) > 0 {
			s.first = s.rest[len(s.rest)-1]
			s.rest = s.rest[:len(s.rest)-1]
		}
		s.n--
		return true
	}
	for i, e := range s.rest {
		if e.value == value {
			last := len(s.rest) - 1
			s.rest[i] = s.rest[last]
			s.rest = s.rest[:last]
			s.n--
			return true
		}
	}
	return false
}

func (s *refSet[V]) each(fn func(entry[V]) bool) bool {
	if s.n == 0 {
		return true
	}
	if !fn(s.first) {
		return false
	}
	for _, e := range s.rest {
		if !fn(e) {
			return false
		}
	}
	return true
}

// Tree is an adaptive suffix tree mapping byte-slice keys to values of
// type V. V must be comparable so Erase can identify which occurrence of
// a shared suffix to drop.
type Tree[V comparable] struct {
	art   *art.Tree[*refSet[V]]
	arena *keyarena.Arena
	size  int
}

// New returns an empty Tree.
func New[V comparable]() *Tree[V] {
	return &Tree[V]{art: art.New[*refSet[V]](), arena: keyarena.New()}
}

// Len reports the number of distinct original keys inserted.
func (t *Tree[V]) Len() int { return t.size }

// Insert indexes every suffix of key against value, including the
// trailing empty suffix at offset len(key) — spec property #4 requires
// search_suffix(K[i..]) to resolve for every 0 <= i <= |K|, i at |K|
// included.
func (t *Tree[V]) Insert(key []byte, value V) {
	base := t.arena.Insert(key)
	full := t.arena.Key(base)
	for offset := 0; offset <= len(full); offset++ {
		suffix := full[offset:]
		ref := keyarena.Ref{Idx: base.Idx, Offset: offset}
		if rs, ok := t.art.Search(suffix); ok {
			rs.add(entry[V]{ref: ref, value: value})
		} else {
			rs := &refSet[V]{}
			rs.add(entry[V]{ref: ref, value: value})
			t.art.Insert(suffix, rs)
		}
	}
	t.size++
}

// Erase removes every suffix reference that this (key, value) pair
// contributed. It reports whether anything was removed; a key that was not
// inserted with value leaves the tree unchanged.
func (t *Tree[V]) Erase(key []byte, value V) bool {
	whole, ok := t.art.Search(key)
	if !ok {
		return false
	}
	present := false
	whole.each(func(e entry[V]) bool {
		present = e.ref.Offset == 0 && e.value == value
		return !present
	})
	if !present {
		return false
	}

	removed := false
	for offset := 0; offset <= len(key); offset++ {
		suffix := key[offset:]
		rs, ok := t.art.Search(suffix)
		if !ok {
			continue
		}
		if rs.remove(value) {
			removed = true
		}
		if rs.n == 0 {
			t.art.Erase(suffix)
		}
	}
	if removed {
		t.size--
	}
	return removed
}

// SearchExact returns the values of every original key equal to s.
func (t *Tree[V]) SearchExact(s []byte) []V {
	rs, ok := t.art.Search(s)
	if !ok {
		return nil
	}
	var out []V
	rs.each(func(e entry[V]) bool {
		if e.ref.Offset == 0 {
			out = append(out, e.value)
		}
		return true
	})
	return out
}

// SearchSuffix returns the values of every original key that has s as a
// suffix.
func (t *Tree[V]) SearchSuffix(s []byte) []V {
	rs, ok := t.art.Search(s)
	if !ok {
		return nil
	}
	var out []V
	rs.each(func(e entry[V]) bool {
		out = append(out, e.value)
		return true
	})
	return out
}

// SearchPrefix returns the values of every original key that contains s
// anywhere — equivalently, every key whose stored suffix begins with s.
// A non-positive limit means unbounded.
func (t *Tree[V]) SearchPrefix(s []byte, limit int) []V {
	sets := t.art.SearchPrefix(s, 0)
	var out []V
	for _, rs := range sets {
		rs.each(func(e entry[V]) bool {
			out = append(out, e.value)
			return limit <= 0 || len(out) < limit
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
