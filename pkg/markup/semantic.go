package markup

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSemantic = errors.New("unknown semantic")

// Vocab is the vocabulary base every scope points into.
const Vocab = "https://schema.org/"

// Semantic selects the attribute syntax a Renderer emits.
type Semantic int

const (
	Microdata Semantic = iota + 1
	RDFa
)

// ParseSemantic maps a semantic name ("Microdata", "RDFa") to its Semantic,
// ignoring case.
func ParseSemantic(name string) (Semantic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "microdata":
		return Microdata, nil
	case "rdfa":
		return RDFa, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSemantic, name)
}

func (s Semantic) String() string {
	switch s {
	case Microdata:
		return "microdata"
	case RDFa:
		return "rdfa"
	}
	return fmt.Sprintf("semantic(%d)", int(s))
}

// Renderer produces the attribute fragments of one semantic.
type Renderer interface {
	Semantic() Semantic
	// Property returns the attribute declaring a property.
	Property(name string) string
	// Scope returns the attributes declaring an instance of typ.
	Scope(typ string) string
}

// NewRenderer returns the Renderer for s.
func NewRenderer(s Semantic) (Renderer, error) {
	switch s {
	case Microdata:
		return microdata{}, nil
	case RDFa:
		return rdfa{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSemantic, s)
}

// RendererFor is ParseSemantic followed by NewRenderer.
func RendererFor(name string) (Renderer, error) {
	s, err := ParseSemantic(name)
	if err != nil {
		return nil, err
	}
	return NewRenderer(s)
}

type microdata struct{}

func (microdata) Semantic() Semantic { return Microdata }

func (microdata) Property(name string) string {
	return "itemprop='" + name + "'"
}

func (microdata) Scope(typ string) string {
	return "itemscope itemtype='" + Vocab + typ + "'"
}

type rdfa struct{}

func (rdfa) Semantic() Semantic { return RDFa }

func (rdfa) Property(name string) string {
	return "property='" + name + "'"
}

func (rdfa) Scope(typ string) string {
	return "vocab='" + Vocab + "' typeof='" + typ + "'"
}
