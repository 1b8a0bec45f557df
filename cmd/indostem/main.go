package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/registry"
	"go.uber.org/zap"

	"github.com/kuandriy/indostem/analysis/lang/id"
	"github.com/kuandriy/indostem/internal/config"
	"github.com/kuandriy/indostem/stem"
	"github.com/kuandriy/indostem/stopwords"
	"github.com/kuandriy/indostem/internal/text"
)

const usage = `usage: indostem [mode] [flags] < input

modes:
  (default)     print the stems of each input line, space separated
  --pairs       print "word<TAB>stem" for every word
  --bleve       like the default mode, but analyze with the bleve "id" analyzer
                (unicode tokenizer, stop words removed, config is not applied)
  --stopwords   print the stop-word list
  --stats       treat each line as a document and report stem document frequencies

flags:
  --top N       with --stats, limit the report to N stems (default 20, 0 = all)
  --save PATH   with --stats, merge into and save statistics at PATH
  --reset       with --stats --save, discard previously saved statistics
  --json        with --stats, print the report as JSON
`

// configPath returns the config file location: $INDOSTEM_CONFIG, or
// config.json next to the binary.
func configPath() string {
	if p := os.Getenv("INDOSTEM_CONFIG"); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		exe = "."
	}
	return filepath.Join(filepath.Dir(exe), "config.json")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "indostem panic: %v\n", r)
			os.Exit(2)
		}
	}()

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "indostem: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if hasFlag(args, "-h") || hasFlag(args, "--help") {
		fmt.Fprint(stdout, usage)
		return nil
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	logger.Debug("config loaded",
		zap.Bool("derivational", cfg.Derivational),
		zap.Bool("removeStopWords", cfg.RemoveStopWords),
		zap.Int("minLength", cfg.MinLength),
	)

	a := newAnalyzer(cfg)
	out := bufio.NewWriter(stdout)

	switch {
	case hasFlag(args, "--stopwords"):
		err = handleStopWords(out)
	case hasFlag(args, "--stats"):
		var opts statsOptions
		if opts, err = parseStatsOptions(args); err == nil {
			err = handleStats(a, stdin, out, opts, logger)
		}
	case hasFlag(args, "--pairs"):
		err = handlePairs(a, stdin, out, logger)
	case hasFlag(args, "--bleve"):
		err = handleBleve(stdin, out, logger)
	default:
		err = handleStem(a, stdin, out, logger)
	}
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newAnalyzer(cfg config.Config) *text.Analyzer {
	var opts []stem.Option
	if !cfg.Derivational {
		opts = append(opts, stem.WithoutDerivational())
	}
	return &text.Analyzer{
		Stemmer:         stem.New(opts...),
		RemoveStopWords: cfg.RemoveStopWords,
		MinLength:       cfg.MinLength,
	}
}

func handleStopWords(w io.Writer) error {
	for _, word := range stopwords.List() {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}

// handleStem writes one output line per input line, preserving blank lines
// so the output stays aligned with the input.
func handleStem(a *text.Analyzer, r io.Reader, w io.Writer, logger *zap.Logger) error {
	lines := 0
	err := eachLine(r, func(line string) error {
		lines++
		_, err := fmt.Fprintln(w, strings.Join(a.Terms(line), " "))
		return err
	})
	if err != nil {
		return err
	}
	logger.Debug("stemmed input", zap.Int("lines", lines))
	return nil
}

func handlePairs(a *text.Analyzer, r io.Reader, w io.Writer, logger *zap.Logger) error {
	words := 0
	err := eachLine(r, func(line string) error {
		for _, p := range a.Pairs(line) {
			words++
			if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Word, p.Stem); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Debug("stemmed words", zap.Int("words", words))
	return nil
}

// handleBleve runs every input line through the registered bleve "id"
// analyzer and prints the resulting terms.
func handleBleve(r io.Reader, w io.Writer, logger *zap.Logger) error {
	analyzer, err := registry.NewCache().AnalyzerNamed(id.AnalyzerName)
	if err != nil {
		return fmt.Errorf("bleve analyzer %q: %w", id.AnalyzerName, err)
	}

	lines := 0
	err = eachLine(r, func(line string) error {
		lines++
		tokens := analyzer.Analyze([]byte(line))
		terms := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			terms = append(terms, string(tok.Term))
		}
		_, err := fmt.Fprintln(w, strings.Join(terms, " "))
		return err
	})
	if err != nil {
		return err
	}
	logger.Debug("analyzed input", zap.String("analyzer", id.AnalyzerName), zap.Int("lines", lines))
	return nil
}

func eachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// hasFlag returns true if the given flag appears anywhere in args.
func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// flagValue returns the argument following flag, and whether flag was given.
func flagValue(args []string, flag string) (string, bool, error) {
	for i, a := range args {
		if a != flag {
			continue
		}
		if i+1 >= len(args) {
			return "", true, fmt.Errorf("%s needs a value", flag)
		}
		return args[i+1], true, nil
	}
	return "", false, nil
}

func parseStatsOptions(args []string) (statsOptions, error) {
	opts := statsOptions{top: 20, asJSON: hasFlag(args, "--json"), reset: hasFlag(args, "--reset")}

	v, ok, err := flagValue(args, "--top")
	if err != nil {
		return opts, err
	}
	if ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid --top %q", v)
		}
		opts.top = n
	}

	opts.savePath, _, err = flagValue(args, "--save")
	if err != nil {
		return opts, err
	}
	if opts.reset && opts.savePath == "" {
		return opts, fmt.Errorf("--reset needs --save")
	}
	return opts, nil
}
