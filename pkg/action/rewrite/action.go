package rewrite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/sdmarkup/pkg/manifest"
	"github.com/cmmoran/sdmarkup/pkg/parser"
)

var (
	ErrNoMatch           = errors.New("no files match")
	ErrConflictingOutput = errors.New("only one of output directory, in place and diff may be set")
)

// DefaultGlob selects the markup files below a directory pattern.
const DefaultGlob = "**/*.{html,htm}"

// Config selects the files of a pass and where their rewritten text goes.
// With none of OutputDirectory, InPlace and Diff set the text goes to Stdout.
type Config struct {
	Patterns        []string
	OutputDirectory string
	InPlace         bool
	Diff            bool
	Manifest        string
	Stdout          io.Writer
}

func (c *Config) Validate() error {
	n := 0
	for _, set := range []bool{c.OutputDirectory != "", c.InPlace, c.Diff} {
		if set {
			n++
		}
	}
	if n > 1 {
		return ErrConflictingOutput
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	return nil
}

// Result describes the rewrite of one file.
type Result struct {
	Source  string
	Output  string // written file, "" when nothing was written to disk
	Changed bool
	Stats   parser.Stats
}

// Run rewrites every file matched by cfg.Patterns with a parser built from opts.
func Run(opts *parser.Options, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	files, err := Expand(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	p, err := parser.NewWithOpts(opts)
	if err != nil {
		return nil, err
	}

	return Files(p, cfg, files)
}

// Files rewrites files in order, each with a fresh clone of base, and records
// them in the manifest when one is configured.
func Files(base *parser.Parser, cfg Config, files []string) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		m   *manifest.Manifest
		err error
	)
	if cfg.Manifest != "" {
		if m, err = manifest.Load(cfg.Manifest); err != nil {
			return nil, err
		}
		m.Semantic = base.Semantic()
	}

	results := make([]Result, 0, len(files))
	for _, f := range files {
		r, err := File(base.Clone(), cfg, f)
		if err != nil {
			return results, err
		}
		results = append(results, r)
		if m != nil {
			m.Record(manifest.Entry{
				Source:     f,
				Output:     r.Output,
				Directives: r.Stats.Directives,
				Dropped:    r.Stats.Dropped,
			})
		}
	}

	if m != nil {
		if err = m.Save(cfg.Manifest); err != nil {
			return results, err
		}
	}

	return results, nil
}

// File rewrites a single file with p.
func File(p *parser.Parser, cfg Config, path string) (Result, error) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	r := Result{Source: path}

	info, err := os.Stat(path)
	if err != nil {
		return r, fmt.Errorf("rewrite %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("rewrite %s: %w", path, err)
	}
	src := string(data)

	var out string
	out, r.Stats = p.ParseStats(src)
	r.Changed = out != src

	switch {
	case cfg.Diff:
		if diff := cmp.Diff(src, out); diff != "" {
			_, err = fmt.Fprintf(cfg.Stdout, "%s (-original +rewritten):\n%s", path, diff)
		}
	case cfg.InPlace:
		if r.Changed {
			r.Output = path
			err = os.WriteFile(path, []byte(out), info.Mode().Perm())
		}
	case cfg.OutputDirectory != "":
		r.Output = OutputPath(cfg.OutputDirectory, path)
		if err = os.MkdirAll(filepath.Dir(r.Output), 0755); err == nil {
			err = os.WriteFile(r.Output, []byte(out), 0644)
		}
	default:
		_, err = io.WriteString(cfg.Stdout, out)
	}
	if err != nil {
		return r, fmt.Errorf("rewrite %s: %w", path, err)
	}

	return r, nil
}

// OutputPath places source below dir, keeping its relative path. Sources
// outside the working directory keep only their base name.
func OutputPath(dir, source string) string {
	rel := filepath.Clean(source)
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		if wd, err := os.Getwd(); err == nil {
			if r, err := filepath.Rel(wd, source); err == nil && !strings.HasPrefix(r, "..") {
				return filepath.Join(dir, r)
			}
		}
		rel = filepath.Base(rel)
	}
	return filepath.Join(dir, rel)
}

// Glob returns the doublestar pattern a command line pattern stands for: a
// directory selects the markup files below it.
func Glob(pattern string) string {
	pattern = filepath.Clean(pattern)
	if !containsGlob(pattern) {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			return filepath.Join(pattern, DefaultGlob)
		}
	}
	return pattern
}

// Expand resolves patterns to a sorted list of distinct files.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		g := Glob(pattern)
		var matches []string
		if containsGlob(g) {
			m, err := doublestar.FilepathGlob(g, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
			}
			matches = m
		} else if info, err := os.Stat(g); err == nil && !info.IsDir() {
			matches = []string{g}
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// Match reports whether path is selected by any of patterns.
func Match(patterns []string, path string) bool {
	path = filepath.Clean(path)
	for _, pattern := range patterns {
		g := Glob(pattern)
		if !containsGlob(g) {
			if g == path {
				return true
			}
			continue
		}
		if ok, err := doublestar.PathMatch(g, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Roots returns the directories that hold the files selected by patterns:
// the static base of every glob and the parent of every file.
func Roots(patterns, files []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		d = filepath.Clean(d)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}

	for _, pattern := range patterns {
		g := filepath.ToSlash(Glob(pattern))
		if containsGlob(g) {
			base, _ := doublestar.SplitPattern(g)
			add(filepath.FromSlash(base))
		}
	}
	for _, f := range files {
		add(filepath.Dir(f))
	}

	sort.Strings(dirs)
	return dirs
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
