// Package config defines the finder's startup configuration: what to
// scan, what to skip, and which indexes to build.
//
// Grounded on original_source/finder.h's Options and Finder::check_path.
package config

import "strings"

// Options holds the finder's startup configuration.
type Options struct {
	root        string
	ignoreList  []string
	includeList []string
	files       bool
	symbols     bool
	statsOnly   bool
	verbose     bool
}

// Option configures an Options value.
type Option func(*Options)

// New builds Options for root, applying opts in order. Files and Symbols
// default to enabled.
func New(root string, opts ...Option) Options {
	o := Options{root: root, files: true, symbols: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIgnore sets the ignore-list path prefixes.
func WithIgnore(prefixes ...string) Option {
	return func(o *Options) { o.ignoreList = prefixes }
}

// WithInclude sets the include-list path prefixes that override the
// ignore list.
func WithInclude(prefixes ...string) Option {
	return func(o *Options) { o.includeList = prefixes }
}

// WithFiles enables or disables the file index.
func WithFiles(enabled bool) Option {
	return func(o *Options) { o.files = enabled }
}

// WithSymbols enables or disables the symbol index (and the tokenizing
// it implies).
func WithSymbols(enabled bool) Option {
	return func(o *Options) { o.symbols = enabled }
}

// WithStatsOnly makes the finder print stats and exit without serving
// queries.
func WithStatsOnly(enabled bool) Option {
	return func(o *Options) { o.statsOnly = enabled }
}

// WithVerbose enables per-path error logging during the scan.
func WithVerbose(enabled bool) Option {
	return func(o *Options) { o.verbose = enabled }
}

func (o Options) Root() string         { return o.root }
func (o Options) IgnoreList() []string  { return o.ignoreList }
func (o Options) IncludeList() []string { return o.includeList }
func (o Options) FilesAllowed() bool    { return o.files }
func (o Options) SymbolsAllowed() bool  { return o.symbols }
func (o Options) StatsOnly() bool       { return o.statsOnly }
func (o Options) Verbose() bool         { return o.verbose }

// mntPrefix is skipped unconditionally: recursively walking it tends to
// hang on network-mounted filesystems.
const mntPrefix = "/mnt"

// AllowPath reports whether path should be scanned: it is always skipped
// under /mnt; otherwise it is skipped only when some ignore-list prefix
// matches it and no include-list entry overrides that — an include entry
// overrides either by being a prefix of path, or by having path as one of
// its own prefixes (so an included subtree under an ignored parent still
// gets walked).
func (o Options) AllowPath(path string) bool {
	if strings.HasPrefix(path, mntPrefix) {
		return false
	}

	ignored := false
	for _, s := range o.ignoreList {
		if strings.HasPrefix(path, s) {
			ignored = true
			break
		}
	}
	if !ignored {
		return true
	}

	for _, s := range o.includeList {
		if len(s) >= len(path) {
			if strings.HasPrefix(s, path) {
				return true
			}
		} else if strings.HasPrefix(path, s) {
			return true
		}
	}
	return false
}

// SupportedExt reports whether ext (including its leading dot) names a
// file extension the symbol tokenizer supports.
func SupportedExt(ext string) bool {
	switch ext {
	case ".c", ".cpp", ".h", ".hpp":
		return true
	default:
		return false
	}
}
