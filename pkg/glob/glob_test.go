package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParts(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, Parts("foo*bar"))
	assert.Equal(t, []string{"", "main", ".go"}, Parts("*main.go"))
	assert.Equal(t, []string{"main.go"}, Parts("main.go"))
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("finder.go", Parts("*.go")))
	assert.True(t, Match("finder.go", Parts("find*.go")))
	assert.True(t, Match("finder.go", Parts("finder.go")))
	assert.False(t, Match("finder.go", Parts("*.cpp")))
	assert.False(t, Match("finder.go", Parts("zz*.go")))
}

func TestMatchOrderingMustNotOverlap(t *testing.T) {
	// Each literal part must be found *after* the previous match ends.
	assert.True(t, Match("abcabc", Parts("abc*abc")))
	assert.False(t, Match("abc", Parts("abc*abc")))
}

func TestMatchHighlight(t *testing.T) {
	ok, bits := MatchHighlight("finder.go", Parts("find*.go"), 0, 0)
	assert.True(t, ok)
	assert.True(t, bits[0]) // 'f'
	assert.True(t, bits[len("finder")]) // '.'
}

func TestMatchHighlightIncludesOnlyTheTypedAnchorPrefix(t *testing.T) {
	// pathOffset is the full directory length (used to shift part-match
	// bits); anchorLen is how much of that the user actually typed. Only
	// the anchor bytes should come back highlighted, not the whole
	// directory.
	ok, bits := MatchHighlight("finder.go", Parts("*.go"), 10, 4)
	assert.True(t, ok)
	for i := 0; i < 4; i++ {
		assert.True(t, bits[i])
	}
	for i := 4; i < 10; i++ {
		assert.False(t, bits[i])
	}
}

func TestMatchHighlightUnanchoredQueryMarksNoPrefixBits(t *testing.T) {
	ok, bits := MatchHighlight("finder.go", Parts("*.go"), 10, 0)
	assert.True(t, ok)
	for i := 0; i < 10; i++ {
		assert.False(t, bits[i])
	}
	assert.True(t, bits[10+len("finder")]) // '.'
}

func TestMatchHighlightNoMatch(t *testing.T) {
	ok, bits := MatchHighlight("finder.go", Parts("*.cpp"), 0, 0)
	assert.False(t, ok)
	assert.Nil(t, bits)
}

func TestSplitAnchor(t *testing.T) {
	anchor, pattern := SplitAnchor("pkg/fileindex/*.go")
	assert.Equal(t, "pkg/fileindex/", anchor)
	assert.Equal(t, "*.go", pattern)

	anchor, pattern = SplitAnchor("*.go")
	assert.Equal(t, "", anchor)
	assert.Equal(t, "*.go", pattern)
}
