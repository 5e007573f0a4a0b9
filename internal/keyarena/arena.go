// Package keyarena stores the original key bytes that an adaptive suffix
// tree indexes, so suffix leaves can hold lightweight references instead
// of copying data for every suffix of every key.
//
// Grounded on github.com/flier/goutil's pkg/arena/arena.go for the
// append-only, grow-by-doubling vocabulary (Arena, Reset), and on
// original_source/array_map.h for the discipline of handing out stable
// indices that never move once assigned. Unlike the teacher's Arena, this
// one has no Allocator interface and no manual Release: Go's garbage
// collector reclaims a record once nothing — no suffix leaf, no caller —
// still references it.
package keyarena

// sentinel terminates every key stored in the arena, mirroring the byte
// key's implicit terminal-zero semantics: indexing a key's bytes one past
// its real end yields 0x00.
const sentinel = byte(0)

// Ref names a position inside an Arena: the record at Idx, starting at
// Offset bytes into it. A suffix of a key is expressed as the same Idx
// with a larger Offset, so every suffix of a key shares the one copy of
// its bytes.
type Ref struct {
	Idx    int
	Offset int
}

// Arena is an append-only store of sentinel-terminated key bytes. Records
// are never moved or freed individually; the whole Arena is reclaimed
// together when nothing references it.
type Arena struct {
	records [][]byte
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Insert copies key, appends a trailing sentinel, and stores the result as
// a new record. The returned Ref points at offset 0 of that record.
func (a *Arena) Insert(key []byte) Ref {
	buf := make([]byte, len(key)+1)
	copy(buf, key)
	buf[len(key)] = sentinel
	idx := len(a.records)
	a.records = append(a.records, buf)
	return Ref{Idx: idx, Offset: 0}
}

// Suffix returns a Ref to the suffix of ref's record starting n bytes in.
// It is used to build a suffix tree's per-suffix references without
// copying the underlying bytes.
func (a *Arena) Suffix(ref Ref, n int) Ref {
	return Ref{Idx: ref.Idx, Offset: ref.Offset + n}
}

// Lookup returns the bytes from ref's offset to the end of its record,
// including the trailing sentinel.
func (a *Arena) Lookup(ref Ref) []byte {
	return a.records[ref.Idx][ref.Offset:]
}

// Key returns the full original key bytes for ref's record, excluding the
// trailing sentinel.
func (a *Arena) Key(ref Ref) []byte {
	rec := a.records[ref.Idx]
	return rec[:len(rec)-1]
}

// Len returns the number of records stored.
func (a *Arena) Len() int { return len(a.records) }

// Reset discards all records, retaining the underlying slice's capacity.
func (a *Arena) Reset() {
	a.records = a.records[:0]
}
