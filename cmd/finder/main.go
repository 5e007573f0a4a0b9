// Command finder walks a directory tree, indexes its files and (C/C++)
// symbols, and reports index statistics.
//
// The interactive console and clipboard surfaces described alongside
// this engine are external collaborators (see pkg/console, pkg/clipboard)
// and are not wired up here; this binary is the engine's composition
// root and stats-reporting entry point, grounded on
// original_source/finder.h's Finder constructor.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alcolic-to/finder-sub000/pkg/clipboard"
	"github.com/alcolic-to/finder-sub000/pkg/config"
	"github.com/alcolic-to/finder-sub000/pkg/console"
	"github.com/alcolic-to/finder-sub000/pkg/fileindex"
	"github.com/alcolic-to/finder-sub000/pkg/lexer"
	"github.com/alcolic-to/finder-sub000/pkg/symbolindex"
)

// consoleSession and clipboardSession are left unimplemented: this
// binary is the engine's composition root, not the interactive UI. A
// caller wiring up a real terminal session supplies its own
// console.Console and clipboard.Clipboard.
var (
	consoleSession   console.Console
	clipboardSession clipboard.Clipboard
)

func main() {
	root := flag.String("root", ".", "root directory to scan")
	ignore := flag.String("ignore", "", "comma-separated ignore-list path prefixes")
	include := flag.String("include", "", "comma-separated include-list path prefixes")
	noFiles := flag.Bool("no-files", false, "disable the file index")
	noSymbols := flag.Bool("no-symbols", false, "disable the symbol index")
	statsOnly := flag.Bool("stats-only", false, "print stats and exit")
	verbose := flag.Bool("verbose", false, "log per-path scan errors")
	flag.Parse()

	opts := config.New(*root,
		config.WithIgnore(splitCSV(*ignore)...),
		config.WithInclude(splitCSV(*include)...),
		config.WithFiles(!*noFiles),
		config.WithSymbols(!*noSymbols),
		config.WithStatsOnly(*statsOnly),
		config.WithVerbose(*verbose),
	)

	eng := newEngine(opts)
	eng.scan()
	eng.printStats()

	if opts.StatsOnly() {
		os.Exit(0)
	}

	if consoleSession != nil {
		runInteractive(eng, consoleSession, clipboardSession)
	}
}

// runInteractive would drive a search session against consoleSession and
// clipboardSession; left unimplemented since no concrete collaborator is
// wired into this binary.
func runInteractive(*engine, console.Console, clipboard.Clipboard) {}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// engine owns the two indexes and scans the configured root into them.
type engine struct {
	opts    config.Options
	files   *fileindex.Index
	symbols *symbolindex.Index
	lexer   symbolindex.Lexer
}

func newEngine(opts config.Options) *engine {
	return &engine{
		opts:    opts,
		files:   fileindex.New(),
		symbols: symbolindex.New(),
		lexer:   lexer.WordLexer{},
	}
}

func (e *engine) scan() {
	_ = filepath.WalkDir(e.opts.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if e.opts.Verbose() {
				fmt.Fprintf(os.Stderr, "error accessing %s: %v\n", path, err)
			}
			return nil
		}
		if !e.opts.AllowPath(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		e.indexFile(path)
		return nil
	})
}

func (e *engine) indexFile(path string) {
	if !e.opts.FilesAllowed() {
		return
	}
	handle, inserted := e.files.Insert(path)
	if !inserted {
		return
	}

	if !e.opts.SymbolsAllowed() || !config.SupportedExt(filepath.Ext(path)) {
		return
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if e.opts.Verbose() {
			fmt.Fprintf(os.Stderr, "problem with opening file %s\n", path)
		}
		return
	}
	if err := e.symbols.IndexSource(handle, src, e.lexer); err != nil && e.opts.Verbose() {
		fmt.Fprintf(os.Stderr, "problem tokenizing %s: %v\n", path, err)
	}
}

func (e *engine) printStats() {
	fmt.Printf("files indexed: %d\n", e.files.Len())
	if e.opts.SymbolsAllowed() {
		fmt.Println("symbol index built")
	}
}
