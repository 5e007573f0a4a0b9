// Package glob implements the `*`-wildcard matcher used to search the
// file index's name and path sets.
//
// Grounded on original_source/files.hpp's match_name and match_slow: a
// pattern is split on '*' into ordered literal parts, and a candidate
// matches if every non-empty part can be found in order, each one
// starting at or after where the previous one ended.
package glob

import "strings"

// Parts splits pattern on '*' into its ordered literal parts.
func Parts(pattern string) []string {
	return strings.Split(pattern, "*")
}

// Match reports whether name matches parts: each non-empty part must be
// found in name, in order, without overlapping with an earlier match.
func Match(name string, parts []string) bool {
	cursor := 0
	for _, p := range parts {
		if p == "" {
			continue
		}
		idx := strings.Index(name[cursor:], p)
		if idx < 0 {
			return false
		}
		cursor += idx + len(p)
	}
	return true
}

// MatchHighlight is Match plus a highlight bitset over a pathOffset-byte
// prefix (typically the matched file's full directory path) followed by
// name: bits[i] is set for every byte position a matched part
// contributed, shifted by pathOffset. anchorLen additionally marks the
// first anchorLen bytes of that prefix as highlighted — the directory
// anchor the caller actually typed, which may be shorter than
// pathOffset (or zero, for an unanchored query). Grounded on
// original_source/files.hpp's match_slow: the part-match shift uses the
// full file path's length, while the prefix highlight uses only
// search_path.size(), the typed anchor. Returns ok=false and a nil
// bitset on a non-match.
func MatchHighlight(name string, parts []string, pathOffset, anchorLen int) (ok bool, bits []bool) {
	bits = make([]bool, pathOffset+len(name))
	for i := 0; i < anchorLen; i++ {
		bits[i] = true
	}
	cursor := 0
	for _, p := range parts {
		if p == "" {
			continue
		}
		idx := strings.Index(name[cursor:], p)
		if idx < 0 {
			return false, nil
		}
		start := cursor + idx
		for i := 0; i < len(p); i++ {
			bits[pathOffset+start+i] = true
		}
		cursor = start + len(p)
	}
	return true, bits
}

// SplitAnchor splits a search query into its directory anchor and name
// pattern, on the query's final path separator. A query with no
// separator has an empty anchor and the whole query as pattern.
func SplitAnchor(query string) (anchor, pattern string) {
	idx := strings.LastIndexByte(query, '/')
	if idx < 0 {
		return "", query
	}
	return query[:idx+1], query[idx+1:]
}
