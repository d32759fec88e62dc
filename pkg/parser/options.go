package parser

import (
	"log/slog"
	"strings"

	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

const (
	// DefaultSemantic is the markup flavor used when none is configured.
	DefaultSemantic = "Microdata"
	// DefaultSuffix is always registered: directives live in data-sd.
	DefaultSuffix = "sd"
	// AttributePrefix precedes every directive suffix.
	AttributePrefix = "data-"
)

// Options control how a Parser rewrites markup.
//
// Semantic       – "Microdata" or "RDFa"
// Suffixes       – directive attribute suffixes registered on top of "sd"
// Disabled       – strip directives without emitting any markup
// VocabularyFile – json, yaml or toml vocabulary replacing the embedded schema.org one
// Registry       – vocabulary for library callers, wins over VocabularyFile
// Logger         – destination of debug output, slog.Default() when nil
type Options struct {
	Semantic       string              `json:"semantic,omitempty" yaml:"semantic,omitempty" toml:"semantic,omitempty" mapstructure:"semantic,omitempty"`
	Suffixes       []string            `json:"suffixes,omitempty" yaml:"suffixes,omitempty" toml:"suffixes,omitempty" mapstructure:"suffixes,omitempty"`
	Disabled       bool                `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty" mapstructure:"disabled,omitempty"`
	VocabularyFile string              `json:"vocabulary_file,omitempty" yaml:"vocabulary_file,omitempty" toml:"vocabulary_file,omitempty" mapstructure:"vocabulary_file,omitempty"`
	Registry       vocabulary.Registry `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
	Logger         *slog.Logger        `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		Semantic: DefaultSemantic,
	}
}

// Normalize fills defaults and folds extra suffix lists ("a,b;c") into
// Suffixes, lower-cased, without empties or duplicates.
func (o *Options) Normalize(suffixLists ...string) {
	o.Semantic = strings.TrimSpace(o.Semantic)
	if len(o.Semantic) == 0 {
		o.Semantic = DefaultSemantic
	}

	raw := append([]string(nil), o.Suffixes...)
	for _, s := range suffixLists {
		raw = append(raw, splitSuffixes(s)...)
	}
	o.Suffixes = o.Suffixes[:0]
	for _, s := range raw {
		for _, part := range splitSuffixes(s) {
			if n, ok := normalizeSuffix(part); ok && !containsSuffix(o.Suffixes, n) {
				o.Suffixes = append(o.Suffixes, n)
			}
		}
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithSemantic(s string) Option       { return func(o *Options) { o.Semantic = s } }
func WithDisabled() Option               { return func(o *Options) { o.Disabled = true } }
func WithVocabularyFile(f string) Option { return func(o *Options) { o.VocabularyFile = f } }
func WithLogger(l *slog.Logger) Option   { return func(o *Options) { o.Logger = l } }
func WithRegistry(r vocabulary.Registry) Option {
	return func(o *Options) { o.Registry = r }
}
func WithSuffix(suffixes ...string) Option {
	return func(o *Options) {
		for _, s := range suffixes {
			o.Suffixes = append(o.Suffixes, strings.TrimSpace(s))
		}
	}
}
