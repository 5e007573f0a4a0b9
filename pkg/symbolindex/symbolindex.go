// Package symbolindex implements the symbol index: tokens produced by an
// external lexer are filtered down to identifier-like words, then indexed
// as symbol → file → (line, preview) records.
//
// Grounded on original_source/symbols.h, which indexes symbols with
// art::ART<Symbol*> rather than a suffix tree, with an explicit comment
// explaining the choice: symbol search does not need prefix search, so
// the extra suffix-tree memory buys nothing. This package follows that
// decision and builds directly on internal/art rather than
// pkg/suffixtree.
package symbolindex

import (
	"strings"

	"github.com/alcolic-to/finder-sub000/internal/art"
	"github.com/alcolic-to/finder-sub000/internal/keywordset"
	"github.com/alcolic-to/finder-sub000/pkg/fileindex"
)

// TokenKind classifies a lexed token. The lexer producing these is an
// external collaborator; this package only consumes its output.
type TokenKind int

const (
	TokenPreproc TokenKind = iota
	TokenComment
	TokenNumber
	TokenCharLit
	TokenStrLit
	TokenNonWord
	TokenWord
)

// Token is one unit of output from a Lexer.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

// Lexer tokenizes source text. Implementations are supplied by the
// caller; this package has no tokenizer of its own.
type Lexer interface {
	Lex(source []byte) ([]Token, error)
}

// supportedExts lists the file extensions this package will tokenize.
var supportedExts = map[string]bool{".c": true, ".cpp": true, ".h": true, ".hpp": true}

// SupportsExt reports whether ext (including its leading dot) is a
// supported source extension.
func SupportsExt(ext string) bool { return supportedExts[ext] }

// LineRef is one occurrence of a symbol within a file.
type LineRef struct {
	Line    int
	Preview string
}

type fileRefs struct {
	file  fileindex.Handle
	lines []LineRef
}

func (fr *fileRefs) addLine(ref LineRef) bool {
	for _, l := range fr.lines {
		if l.Line == ref.Line {
			return false
		}
	}
	fr.lines = append(fr.lines, ref)
	return true
}

func (fr *fileRefs) removeLine(line int) bool {
	for i, l := range fr.lines {
		if l.Line == line {
			last := len(fr.lines) - 1
			fr.lines[i] = fr.lines[last]
			fr.lines = fr.lines[:last]
			return true
		}
	}
	return false
}

// Symbol is one indexed identifier, together with every file and line it
// occurs on.
type Symbol struct {
	Name string
	Refs []fileRefs
}

func (s *Symbol) findOrCreate(file fileindex.Handle) *fileRefs {
	for i := range s.Refs {
		if s.Refs[i].file == file {
			return &s.Refs[i]
		}
	}
	s.Refs = append(s.Refs, fileRefs{file: file})
	return &s.Refs[len(s.Refs)-1]
}

func (s *Symbol) removeFileRefAt(i int) {
	last := len(s.Refs) - 1
	s.Refs[i] = s.Refs[last]
	s.Refs = s.Refs[:last]
}

// Files returns the distinct file handles this symbol occurs in.
func (s *Symbol) Files() []fileindex.Handle {
	out := make([]fileindex.Handle, len(s.Refs))
	for i, fr := range s.Refs {
		out[i] = fr.file
	}
	return out
}

// Lines returns every line reference recorded for file, if any.
func (s *Symbol) Lines(file fileindex.Handle) ([]LineRef, bool) {
	for _, fr := range s.Refs {
		if fr.file == file {
			return fr.lines, true
		}
	}
	return nil, false
}

// Index is the symbol index: an ART mapping symbol name to its Symbol
// record, plus the keyword table used to filter tokenizer output.
type Index struct {
	art      *art.Tree[*Symbol]
	keywords *keywordset.Set
}

// New returns an empty Index using the standard C/C++ keyword table.
func New() *Index {
	return &Index{art: art.New[*Symbol](), keywords: keywordset.CPP}
}

// Insert records that symbol occurs in file at line, with the given
// source preview. It reports whether this was a new occurrence.
func (idx *Index) Insert(symbol string, file fileindex.Handle, line int, preview string) bool {
	sym, ok := idx.art.Search([]byte(symbol))
	if !ok {
		sym = &Symbol{Name: symbol}
		idx.art.Insert([]byte(symbol), sym)
	}
	return sym.findOrCreate(file).addLine(LineRef{Line: line, Preview: preview})
}

// Erase removes one occurrence of symbol in file at line. Empty file
// entries and empty symbols are pruned as they go empty. It reports
// whether anything was removed.
func (idx *Index) Erase(symbol string, file fileindex.Handle, line int) bool {
	sym, ok := idx.art.Search([]byte(symbol))
	if !ok {
		return false
	}
	for i := range sym.Refs {
		if sym.Refs[i].file != file {
			continue
		}
		if !sym.Refs[i].removeLine(line) {
			return false
		}
		if len(sym.Refs[i].lines) == 0 {
			sym.removeFileRefAt(i)
		}
		if len(sym.Refs) == 0 {
			idx.art.Erase([]byte(symbol))
		}
		return true
	}
	return false
}

// Search returns the Symbol record for an exact name match.
func (idx *Index) Search(symbol string) (*Symbol, bool) {
	return idx.art.Search([]byte(symbol))
}

// IndexSource tokenizes src with lex and indexes every word token that is
// not a keyword.
func (idx *Index) IndexSource(file fileindex.Handle, src []byte, lex Lexer) error {
	tokens, err := lex.Lex(src)
	if err != nil {
		return err
	}
	lines := strings.Split(string(src), "\n")
	for _, tok := range tokens {
		if tok.Kind != TokenWord || tok.Text == "" {
			continue
		}
		if idx.keywords.Contains(tok.Text) {
			continue
		}
		preview := ""
		if i := tok.Line - 1; i >= 0 && i < len(lines) {
			preview = strings.TrimRight(lines[i], " \t\r")
		}
		idx.Insert(tok.Text, file, tok.Line, preview)
	}
	return nil
}
