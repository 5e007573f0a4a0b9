// Package lexer provides a default symbolindex.Lexer implementation: a
// small line-oriented tokenizer that classifies preprocessor directives,
// comments, literals, numbers, words and everything else.
//
// Grounded on original_source/tokens.hpp's NECTR_Tokenizer, whose own
// comment is blunt about its ambitions: "Not even close to a real
// tokenizer, but it returns some kind of tokens." This port keeps that
// scope — good enough to drive symbol indexing, not a C++ parser.
package lexer

import (
	"strings"
	"unicode"

	"github.com/alcolic-to/finder-sub000/pkg/symbolindex"
)

// WordLexer tokenizes one line at a time, the way the original
// constructs a fresh tokenizer per line inside its scan loop.
type WordLexer struct{}

// Lex implements symbolindex.Lexer.
func (WordLexer) Lex(source []byte) ([]symbolindex.Token, error) {
	lines := strings.Split(string(source), "\n")
	var out []symbolindex.Token
	for i, line := range lines {
		out = append(out, tokenizeLine(line, i+1)...)
	}
	return out, nil
}

func tokenizeLine(line string, lineNum int) []symbolindex.Token {
	r := []rune(line)
	var toks []symbolindex.Token
	i := 0

	for i < len(r) {
		for i < len(r) && unicode.IsSpace(r[i]) {
			i++
		}
		if i >= len(r) {
			break
		}

		switch {
		case r[i] == '#':
			start := i
			i++
			for i < len(r) && unicode.IsSpace(r[i]) {
				i++
			}
			for i < len(r) && isAlnum(r[i]) {
				i++
			}
			toks = append(toks, tok(symbolindex.TokenPreproc, r, start, i, lineNum))

		case r[i] == '/' && i+1 < len(r) && r[i+1] == '/':
			toks = append(toks, tok(symbolindex.TokenComment, r, i, len(r), lineNum))
			i = len(r)

		case r[i] == '/' && i+1 < len(r) && r[i+1] == '*':
			start := i
			i += 2
			for i < len(r) && !(r[i] == '*' && i+1 < len(r) && r[i+1] == '/') {
				i++
			}
			if i < len(r) {
				i += 2
			} else {
				i = len(r)
			}
			toks = append(toks, tok(symbolindex.TokenComment, r, start, min(i, len(r)), lineNum))

		case unicode.IsDigit(r[i]):
			start := i
			for i < len(r) && unicode.IsDigit(r[i]) {
				i++
			}
			toks = append(toks, tok(symbolindex.TokenNumber, r, start, i, lineNum))

		case r[i] == '\'':
			start := i
			i++
			for i < len(r) && r[i] != '\'' {
				i++
			}
			if i < len(r) {
				i++
			}
			toks = append(toks, tok(symbolindex.TokenCharLit, r, start, i, lineNum))

		case r[i] == '"':
			start := i
			i++
			for i < len(r) && r[i] != '"' {
				i++
			}
			if i < len(r) {
				i++
			}
			toks = append(toks, tok(symbolindex.TokenStrLit, r, start, i, lineNum))

		case isWordCh(r[i]):
			start := i
			for i < len(r) && isWordCh(r[i]) {
				i++
			}
			toks = append(toks, tok(symbolindex.TokenWord, r, start, i, lineNum))

		default:
			start := i
			bracket := isBracket(r[i])
			i++
			if !bracket {
				for i < len(r) && !isWordCh(r[i]) && !unicode.IsSpace(r[i]) {
					i++
				}
			}
			toks = append(toks, tok(symbolindex.TokenNonWord, r, start, i, lineNum))
		}
	}
	return toks
}

func tok(kind symbolindex.TokenKind, r []rune, start, end, line int) symbolindex.Token {
	return symbolindex.Token{Kind: kind, Text: string(r[start:end]), Line: line}
}

func isWordCh(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isBracket(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '<', '>':
		return true
	}
	return false
}
