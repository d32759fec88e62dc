package watch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cmmoran/sdmarkup/pkg/action/rewrite"
	"github.com/cmmoran/sdmarkup/pkg/parser"
)

// DefaultDebounce is how long changes are collected before a pass.
const DefaultDebounce = 300 * time.Millisecond

// Config configures a watch.
type Config struct {
	Rewrite rewrite.Config
	// Debounce delays a pass until no change arrived for this long.
	Debounce time.Duration
	// OnPass, when set, receives the results of every pass, including the first.
	OnPass func([]rewrite.Result)
}

func (c *Config) debounce() time.Duration {
	if c.Debounce <= 0 {
		return DefaultDebounce
	}
	return c.Debounce
}

// Run rewrites the files matched by cfg.Rewrite.Patterns, then rewrites them
// again whenever they change until ctx is done.
func Run(ctx context.Context, opts *parser.Options, cfg Config) error {
	if err := cfg.Rewrite.Validate(); err != nil {
		return err
	}
	files, err := rewrite.Expand(cfg.Rewrite.Patterns)
	if err != nil {
		return err
	}
	p, err := parser.NewWithOpts(opts)
	if err != nil {
		return err
	}
	logger := opts.Logger

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	for _, dir := range rewrite.Roots(cfg.Rewrite.Patterns, files) {
		if err = w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching directory", "path", dir)
	}

	own := make(writes)
	if err = pass(p, cfg, files, own, logger); err != nil {
		return err
	}
	logger.Info("watcher started", "files", len(files), "debounce", cfg.debounce())

	pending := make(map[string]struct{})
	timer := time.NewTimer(cfg.debounce())
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !selected(cfg.Rewrite, event.Name) {
				continue
			}
			if own.unchanged(event.Name) {
				logger.Debug("own write ignored", "path", event.Name)
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(cfg.debounce())
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for f := range pending {
				changed = append(changed, f)
			}
			clear(pending)
			sort.Strings(changed)

			if err := pass(p, cfg, changed, own, logger); err != nil {
				logger.Error("rewrite failed", "error", err)
			}
		}
	}
}

func pass(p *parser.Parser, cfg Config, files []string, own writes, logger *slog.Logger) error {
	results, err := rewrite.Files(p, cfg.Rewrite, files)
	for _, r := range results {
		if cfg.Rewrite.InPlace && r.Output != "" {
			own.record(r.Output)
		}
		logger.Info("rewritten", "source", r.Source, "output", r.Output, "changed", r.Changed,
			"directives", r.Stats.Directives, "dropped", r.Stats.Dropped)
	}
	if cfg.OnPass != nil {
		cfg.OnPass(results)
	}
	return err
}

// selected reports whether a changed path should be rewritten: it must match
// the patterns and must not be an output of the watch itself.
func selected(cfg rewrite.Config, path string) bool {
	if !rewrite.Match(cfg.Patterns, path) {
		return false
	}
	if cfg.OutputDirectory == "" {
		return true
	}
	out, err := filepath.Abs(cfg.OutputDirectory)
	if err != nil {
		return true
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return true
	}
	return abs != out && !strings.HasPrefix(abs, out+string(filepath.Separator))
}

// writes holds the content of every source the watch rewrote in place, so the
// events caused by those writes do not start another pass over the output.
type writes map[string][]byte

func (w writes) record(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	w[key(path)] = data
}

// unchanged reports whether path still holds what the watch wrote to it. A
// path that changed since is forgotten.
func (w writes) unchanged(path string) bool {
	k := key(path)
	want, ok := w[k]
	if !ok {
		return false
	}
	data, err := os.ReadFile(path)
	if err == nil && bytes.Equal(data, want) {
		return true
	}
	delete(w, k)
	return false
}

func key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
