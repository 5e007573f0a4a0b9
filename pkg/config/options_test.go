package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	o := New("/repo")
	assert.Equal(t, "/repo", o.Root())
	assert.True(t, o.FilesAllowed())
	assert.True(t, o.SymbolsAllowed())
	assert.False(t, o.StatsOnly())
	assert.False(t, o.Verbose())
}

func TestOptionsApply(t *testing.T) {
	o := New("/repo",
		WithIgnore("/repo/vendor"),
		WithInclude("/repo/vendor/keep"),
		WithFiles(false),
		WithSymbols(false),
		WithStatsOnly(true),
		WithVerbose(true),
	)
	assert.Equal(t, []string{"/repo/vendor"}, o.IgnoreList())
	assert.Equal(t, []string{"/repo/vendor/keep"}, o.IncludeList())
	assert.False(t, o.FilesAllowed())
	assert.False(t, o.SymbolsAllowed())
	assert.True(t, o.StatsOnly())
	assert.True(t, o.Verbose())
}

func TestAllowPathSkipsMnt(t *testing.T) {
	o := New("/")
	assert.False(t, o.AllowPath("/mnt/data/file.go"))
}

func TestAllowPathHonorsIgnoreList(t *testing.T) {
	o := New("/repo", WithIgnore("/repo/vendor"))
	assert.False(t, o.AllowPath("/repo/vendor/pkg/a.go"))
	assert.True(t, o.AllowPath("/repo/pkg/a.go"))
}

func TestAllowPathIncludeOverridesIgnoreSubtree(t *testing.T) {
	o := New("/repo", WithIgnore("/repo/vendor"), WithInclude("/repo/vendor/keep"))
	assert.True(t, o.AllowPath("/repo/vendor/keep/a.go"))
	assert.False(t, o.AllowPath("/repo/vendor/other/a.go"))
}

func TestAllowPathIncludeOverridesIgnoredAncestor(t *testing.T) {
	// path itself is a prefix of a deeper included entry, so the ignored
	// ancestor directory still gets walked on the way down to it.
	o := New("/repo", WithIgnore("/repo/vendor"), WithInclude("/repo/vendor/nested/deep"))
	assert.True(t, o.AllowPath("/repo/vendor"))
}

func TestSupportedExt(t *testing.T) {
	assert.True(t, SupportedExt(".cpp"))
	assert.True(t, SupportedExt(".hpp"))
	assert.False(t, SupportedExt(".go"))
}
