// Package main is the command-line entry point for the markwright
// editing engine: it loads a document, applies the requested
// operations, and writes the result to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/markwright/internal/config"
	"github.com/dshills/markwright/internal/editor"
	"github.com/dshills/markwright/internal/preview"
	"github.com/dshills/markwright/internal/engine/search"
	"github.com/dshills/markwright/internal/template"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string

	lint       bool
	prettify   bool
	render     bool
	stats      bool
	exportName bool
	insert     string

	find          string
	replace       string
	useRegex      bool
	caseSensitive bool
	wholeWord     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	log := editor.NewLogger(os.Stderr, editor.ParseLogLevel(cfg.Logging.Level))
	session := editor.New(cfg, editor.WithLogger(log))
	defer session.Close()

	content, name, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if _, err := session.LoadFile(name, "", content); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case opts.lint:
		return runLint(session)
	case opts.stats:
		return runStats(session)
	case opts.render:
		fmt.Println(preview.Render(session.Buffer().Text()))
		return 0
	case opts.exportName:
		filename, _, err := session.Export()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(filename)
		return 0
	case opts.insert != "":
		return runInsert(session, opts.insert)
	case opts.find != "":
		return runReplaceAll(session, opts)
	case opts.prettify:
		session.Prettify()
		fmt.Print(session.Buffer().Text())
		return 0
	default:
		flag.Usage()
		return 2
	}
}

func runLint(session *editor.Session) int {
	issues := session.RunLint()
	for _, issue := range issues {
		fmt.Printf("line %d: [%s] %s\n", issue.Line, issue.Rule, issue.Message)
	}
	if len(issues) > 0 {
		return 1
	}
	fmt.Println("No issues found.")
	return 0
}

func runStats(session *editor.Session) int {
	stats := session.Stats()
	fmt.Printf("%d words, %d chars, %d lines\n", stats.Words, stats.Chars, stats.Lines)
	return 0
}

func runInsert(session *editor.Session, name string) int {
	_, err := session.InsertTemplate(template.Section(name))
	if err != nil {
		if errors.Is(err, template.ErrSectionExists) {
			fmt.Fprintln(os.Stderr, "This section already exists in your document")
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Print(session.Buffer().Text())
	return 0
}

func runReplaceAll(session *editor.Session, opts options) int {
	eng := session.Search()
	err := eng.SetConfig(search.Config{
		Query:         opts.find,
		UseRegex:      opts.useRegex,
		CaseSensitive: opts.caseSensitive,
		WholeWord:     opts.wholeWord,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	status, err := eng.ReplaceAll(opts.replace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(os.Stderr, status.Message)
	fmt.Print(session.Buffer().Text())
	return 0
}

// readInput opens the named file, or stdin when no file is given.
func readInput(args []string) (io.Reader, string, error) {
	if len(args) == 0 {
		return os.Stdin, "stdin.md", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, filepath.Base(args[0]), nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.BoolVar(&opts.lint, "lint", false, "Lint the document and print issues")
	flag.BoolVar(&opts.prettify, "prettify", false, "Normalize document structure")
	flag.BoolVar(&opts.render, "render", false, "Render the document to HTML")
	flag.BoolVar(&opts.stats, "stats", false, "Print word/char/line counts")
	flag.BoolVar(&opts.exportName, "export-name", false, "Print the derived export filename")
	flag.StringVar(&opts.insert, "insert", "", "Insert a template section by name")

	flag.StringVar(&opts.find, "find", "", "Find pattern (replace all with -replace)")
	flag.StringVar(&opts.replace, "replace", "", "Replacement text for -find")
	flag.BoolVar(&opts.useRegex, "regex", false, "Treat the find pattern as a regular expression")
	flag.BoolVar(&opts.caseSensitive, "case", false, "Case-sensitive search")
	flag.BoolVar(&opts.wholeWord, "word", false, "Whole-word search")

	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Markwright - markdown editing engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: markwright [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  markwright -lint README.md\n")
		fmt.Fprintf(os.Stderr, "  markwright -prettify draft.md > clean.md\n")
		fmt.Fprintf(os.Stderr, "  markwright -find TODO -replace DONE notes.md\n")
		fmt.Fprintf(os.Stderr, "  cat doc.md | markwright -render\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Markwright %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "markwright", "markwright.toml")
	}
	return "markwright.toml"
}
