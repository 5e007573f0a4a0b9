// Package fileindex implements the file index: a dense table of scanned
// files, an ART keyed by parent directory, and a suffix tree keyed by
// filename. Searches check the query's directory anchor against the ART
// and then scan the table with the glob matcher; the filename suffix tree
// is kept in step by Insert and Erase but no search method queries it.
//
// Grounded on original_source/files.hpp's Files class. One divergence:
// the original stores a file record's parent_path as a string_view into
// the ART leaf's key buffer, to avoid a second copy, and is forced by
// that sharing to erase the file record strictly before the ART key it
// points into. Go's garbage collector makes that ordering unnecessary —
// any string still referencing freed bytes keeps them alive — but Erase
// still performs the record-then-leaf ordering here, for the same reason
// the original code does: it expresses which side owns the data.
package fileindex

import (
	"strings"

	"github.com/alcolic-to/finder-sub000/internal/art"
	"github.com/alcolic-to/finder-sub000/internal/slotmap"
	"github.com/alcolic-to/finder-sub000/internal/smallstring"
	"github.com/alcolic-to/finder-sub000/pkg/glob"
	"github.com/alcolic-to/finder-sub000/pkg/result"
	"github.com/alcolic-to/finder-sub000/pkg/suffixtree"
)

// Handle identifies a file record.
type Handle = slotmap.Handle

// Record describes one scanned file.
type Record struct {
	Name smallstring.String
	Dir  string
}

// FullPath returns the record's directory and name concatenated.
func (r Record) FullPath() string { return r.Dir + r.Name.String() }

// Index is the file index: insert/erase full paths, then search them by
// glob pattern, optionally restricted to a disjoint slice of the table
// for partitioned parallel search.
type Index struct {
	files *slotmap.Map[Record]
	paths *art.Tree[[]Handle]
	names *suffixtree.Tree[Handle]
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		files: slotmap.New[Record](),
		paths: art.New[[]Handle](),
		names: suffixtree.New[Handle](),
	}
}

// Len returns the number of indexed files.
func (idx *Index) Len() int { return idx.files.Len() }

func splitPath(path string) (dir, name string) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", path
	}
	return path[:i+1], path[i+1:]
}

func (idx *Index) find(dir, name string) (Handle, bool) {
	list, ok := idx.paths.Search([]byte(dir))
	if !ok {
		return 0, false
	}
	for _, h := range list {
		if rec, ok := idx.files.Get(h); ok && rec.Name.String() == name {
			return h, true
		}
	}
	return 0, false
}

// Insert indexes path, splitting it into directory and filename. It
// returns the file's handle and whether a new record was created; a
// duplicate path is reported with ok=false and the existing handle.
func (idx *Index) Insert(path string) (handle Handle, inserted bool) {
	dir, name := splitPath(path)
	if h, ok := idx.find(dir, name); ok {
		return h, false
	}

	h := idx.files.Insert(Record{Name: smallstring.New(name), Dir: dir})
	idx.names.Insert([]byte(name), h)

	list, _ := idx.paths.Search([]byte(dir))
	list = append(list, h)
	idx.paths.Insert([]byte(dir), list)

	return h, true
}

// Erase removes path from the index. It reports whether anything was
// removed.
func (idx *Index) Erase(path string) bool {
	dir, name := splitPath(path)
	h, ok := idx.find(dir, name)
	if !ok {
		return false
	}

	idx.names.Erase([]byte(name), h)
	idx.files.Erase(h)

	list, _ := idx.paths.Search([]byte(dir))
	list = removeHandle(list, h)
	if len(list) == 0 {
		idx.paths.Erase([]byte(dir))
	} else {
		idx.paths.Insert([]byte(dir), list)
	}
	return true
}

func removeHandle(list []Handle, h Handle) []Handle {
	for i, v := range list {
		if v == h {
			last := len(list) - 1
			list[i] = list[last]
			return list[:last]
		}
	}
	return list
}

// Record returns the record stored for handle.
func (idx *Index) Record(h Handle) (Record, bool) {
	return idx.files.Get(h)
}

// Search runs PartialSearch over the whole table in one slice.
func (idx *Index) Search(query string, limit int) *result.Matches[Handle] {
	return idx.PartialSearch(query, 1, 0, limit)
}

// PartialSearch scans the sliceNumber-th of sliceCount disjoint, roughly
// equal ranges of the file table, matching each candidate's filename
// against query's glob parts. query is first split on its last path
// separator into a directory anchor and a name pattern; if the anchor
// has no matching directory at all, the whole slice is skipped without
// touching the table.
func (idx *Index) PartialSearch(query string, sliceCount, sliceNumber, limit int) *result.Matches[Handle] {
	anchor, pattern := glob.SplitAnchor(query)
	parts := glob.Parts(pattern)
	out := result.New[Handle](limit)

	if anchor != "" && idx.paths.SearchPrefixNode([]byte(anchor)).Empty() {
		return out
	}

	n := idx.files.Len()
	if sliceCount < 1 {
		sliceCount = 1
	}
	chunk := n / sliceCount
	if chunk < 1 {
		chunk = 1
	}
	lo := sliceNumber * chunk
	if lo > n {
		lo = n
	}
	hi := lo + chunk
	if sliceNumber == sliceCount-1 || hi > n {
		hi = n
	}

	for pos := lo; pos < hi; pos++ {
		h, rec := idx.files.At(pos)
		full := rec.FullPath()
		if anchor != "" && !strings.HasPrefix(full, anchor) {
			continue
		}
		if !glob.Match(rec.Name.String(), parts) {
			continue
		}
		out.Insert(h)
	}
	return out
}

// SearchHighlight behaves like Search, but additionally computes a
// highlight bitset for each match, skipping that slower pass once the
// result container is already full.
func (idx *Index) SearchHighlight(query string, limit int) (*result.Matches[Handle], map[Handle][]bool) {
	anchor, pattern := glob.SplitAnchor(query)
	parts := glob.Parts(pattern)
	out := result.New[Handle](limit)
	highlights := make(map[Handle][]bool)

	if anchor != "" && idx.paths.SearchPrefixNode([]byte(anchor)).Empty() {
		return out, highlights
	}

	n := idx.files.Len()
	for pos := 0; pos < n; pos++ {
		h, rec := idx.files.At(pos)
		full := rec.FullPath()
		if anchor != "" && !strings.HasPrefix(full, anchor) {
			continue
		}
		if !glob.Match(rec.Name.String(), parts) {
			continue
		}
		hadRoom := !out.Full()
		out.Insert(h)
		if hadRoom {
			if ok, bits := glob.MatchHighlight(rec.Name.String(), parts, len(rec.Dir), len(anchor)); ok {
				highlights[h] = bits
			}
		}
	}
	return out, highlights
}
