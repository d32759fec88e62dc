package parser

import (
	"fmt"
	"log/slog"
	"sync"

	iparser "github.com/cmmoran/sdmarkup/internal/parser"
	"github.com/cmmoran/sdmarkup/pkg/engine"
	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

// Stats counts what the directives of a pass turned into.
type Stats struct {
	Directives int // directive attributes rewritten
	Properties int // rewritten into a property
	Scopes     int // rewritten into a scope
	Dropped    int // removed without replacement
}

func (s *Stats) add(o iparser.Outcome) {
	s.Directives++
	switch o {
	case iparser.OutcomeProperty:
		s.Properties++
	case iparser.OutcomeScope:
		s.Scopes++
	default:
		s.Dropped++
	}
}

// Parser rewrites data-* directives in markup into structured data.
//
// The current vocabulary type carries over from one directive to the next and
// from one Parse call to the next, until Reset. Calls on one Parser are
// serialized; use Clone to rewrite documents in parallel.
type Parser struct {
	Opts Options

	mu       sync.Mutex
	suffixes []string
	registry vocabulary.Registry
	engine   *engine.Engine
	logger   *slog.Logger
}

// New builds a Parser from functional options.
func New(opts ...Option) (*Parser, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

// NewWithOpts builds a Parser. It fails when the semantic is unknown or the
// vocabulary file cannot be loaded.
func NewWithOpts(opts *Options) (*Parser, error) {
	opts.Normalize()

	reg := opts.Registry
	if reg == nil && opts.VocabularyFile != "" {
		s, err := vocabulary.LoadFile(opts.VocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("new parser: %w", err)
		}
		reg = s
	}
	if reg == nil {
		reg = vocabulary.Default()
	}

	e, err := engine.New(opts.Semantic, engine.WithRegistry(reg), engine.WithEnabled(!opts.Disabled))
	if err != nil {
		return nil, fmt.Errorf("new parser: %w", err)
	}

	p := &Parser{
		Opts:     *opts,
		suffixes: []string{DefaultSuffix},
		registry: reg,
		engine:   e,
		logger:   opts.Logger,
	}
	for _, s := range opts.Suffixes {
		if !containsSuffix(p.suffixes, s) {
			p.suffixes = append(p.suffixes, s)
		}
	}

	return p, nil
}

// Clone returns an independent Parser with the same configuration, starting
// from the root type.
func (p *Parser) Clone() *Parser {
	p.mu.Lock()
	defer p.mu.Unlock()

	return &Parser{
		Opts:     p.Opts,
		suffixes: append([]string(nil), p.suffixes...),
		registry: p.registry,
		engine: engine.NewWithRenderer(p.engine.Renderer(),
			engine.WithRegistry(p.registry),
			engine.WithEnabled(p.engine.Enabled())),
		logger: p.logger,
	}
}

// SetSemantic switches the markup flavor. The current type is kept.
func (p *Parser) SetSemantic(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, err := engine.New(name, engine.WithRegistry(p.registry), engine.WithEnabled(p.engine.Enabled()))
	if err != nil {
		return err
	}
	e.SetType(p.engine.Type())
	p.engine = e
	p.Opts.Semantic = name
	return nil
}

// Semantic returns the lower-cased name of the markup flavor.
func (p *Parser) Semantic() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.engine.Renderer().Semantic().String()
}

// Enable toggles markup output. While disabled, directives are removed
// without replacement.
func (p *Parser) Enable(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.engine.Enable(enabled)
	p.Opts.Disabled = !enabled
}

// AddSuffix registers directive suffixes. Suffixes are lower-cased; empty ones
// and duplicates are ignored.
func (p *Parser) AddSuffix(suffixes ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range suffixes {
		if n, ok := normalizeSuffix(s); ok && !containsSuffix(p.suffixes, n) {
			p.suffixes = append(p.suffixes, n)
		}
	}
}

// RemoveSuffix unregisters directive suffixes.
func (p *Parser) RemoveSuffix(suffixes ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range suffixes {
		n, ok := normalizeSuffix(s)
		if !ok {
			continue
		}
		for i, v := range p.suffixes {
			if v == n {
				p.suffixes = append(p.suffixes[:i], p.suffixes[i+1:]...)
				break
			}
		}
	}
}

// Suffixes returns the registered directive suffixes.
func (p *Parser) Suffixes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.suffixes...)
}

// Type returns the current vocabulary type.
func (p *Parser) Type() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.engine.Type()
}

// Reset returns the parser to the root type.
func (p *Parser) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.engine.Reset()
}

// Parse rewrites every directive attribute in html.
func (p *Parser) Parse(html string) string {
	out, _ := p.ParseStats(html)
	return out
}

// ParseStats rewrites every directive attribute in html and reports what
// the directives turned into.
func (p *Parser) ParseStats(html string) (string, Stats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var stats Stats
	match := func(name string) bool {
		suffix, ok := attributeSuffix(name)
		return ok && containsSuffix(p.suffixes, suffix)
	}
	replace := func(directive string) string {
		plan := iparser.ParsePlan(directive, p.registry)
		out, outcome := iparser.Apply(plan, p.engine)
		stats.add(outcome)
		if outcome == iparser.OutcomeDropped {
			p.logger.Debug("directive dropped", "directive", directive, "type", p.engine.Type())
		}
		return out
	}

	return iparser.Rewrite(html, match, replace), stats
}
