// Package smallstring implements a small-string-optimized immutable
// string, used by pkg/fileindex to store filenames without a heap
// allocation for the common case of a short name.
//
// Grounded on original_source/small_string.h: short values (up to
// smallLimit bytes) are copied inline into the struct itself; anything
// longer spills to a regular Go string, which already carries its bytes
// on the heap. Go strings are immutable and already cheap to copy as a
// header, so unlike the C++ original there is no union or tag bit to
// manage by hand — big and small simply route through different fields
// of the same struct, chosen once at construction time.
package smallstring

// smallLimit mirrors small_string.h's small_limit: strings up to this
// length are stored inline.
const smallLimit = 22

// String holds a short string inline, avoiding a heap allocation and an
// extra pointer indirection for the common case of short filenames. The
// zero value is the empty string.
type String struct {
	small    [smallLimit]byte
	smallLen uint8
	big      string
	isBig    bool
}

// New constructs a String from s, choosing the inline or heap
// representation based on length.
func New(s string) String {
	if len(s) <= smallLimit {
		var v String
		copy(v.small[:], s)
		v.smallLen = uint8(len(s))
		return v
	}
	return String{big: s, isBig: true}
}

// String returns the string value.
func (s String) String() string {
	if s.isBig {
		return s.big
	}
	return string(s.small[:s.smallLen])
}

// Len returns the string's length in bytes.
func (s String) Len() int {
	if s.isBig {
		return len(s.big)
	}
	return int(s.smallLen)
}

// Equal reports whether s and other hold the same string value.
func (s String) Equal(other String) bool {
	return s.String() == other.String()
}
