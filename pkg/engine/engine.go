package engine

import (
	"fmt"

	"github.com/cmmoran/sdmarkup/pkg/markup"
	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

// DisplayMode forces the shape of a rendered fragment. DisplayAuto picks it
// from the property kind.
type DisplayMode string

const (
	DisplayAuto   DisplayMode = ""
	DisplayInline DisplayMode = "inline"
	DisplaySpan   DisplayMode = "span"
	DisplayDiv    DisplayMode = "div"
	DisplayMeta   DisplayMode = "meta"
)

// Engine resolves a property request against a vocabulary and renders it.
//
// The current type is kept across renders until changed by SetType or cleared
// by Reset; every other field belongs to a single render. An Engine is not
// safe for concurrent use.
type Engine struct {
	registry vocabulary.Registry
	renderer markup.Renderer
	enabled  bool
	current  string
	req      Request
}

type Option func(*Engine)

// WithRegistry replaces the embedded schema.org vocabulary.
func WithRegistry(r vocabulary.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithEnabled sets the initial enabled state; engines start enabled.
func WithEnabled(enabled bool) Option {
	return func(e *Engine) { e.enabled = enabled }
}

// New builds an Engine rendering the named semantic ("Microdata" or "RDFa").
func New(semantic string, opts ...Option) (*Engine, error) {
	r, err := markup.RendererFor(semantic)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return NewWithRenderer(r, opts...), nil
}

// NewWithRenderer builds an Engine around an existing renderer.
func NewWithRenderer(r markup.Renderer, opts ...Option) *Engine {
	e := &Engine{
		registry: vocabulary.Default(),
		renderer: r,
		enabled:  true,
	}
	for _, fn := range opts {
		fn(e)
	}
	e.current = e.registry.RootType()
	return e
}

func (e *Engine) Registry() vocabulary.Registry { return e.registry }

func (e *Engine) Renderer() markup.Renderer { return e.renderer }

// Enable toggles the engine. A disabled engine renders no markup at all.
func (e *Engine) Enable(enabled bool) *Engine {
	e.enabled = enabled
	return e
}

func (e *Engine) Enabled() bool { return e.enabled }

// SetType changes the current type. Unknown types fall back to the root.
func (e *Engine) SetType(typ string) *Engine {
	if !e.registry.IsKnownType(typ) {
		typ = e.registry.RootType()
	}
	e.current = typ
	return e
}

// Type returns the current type.
func (e *Engine) Type() string { return e.current }

// SetProperty requests property. It is dropped when the current type does not
// have it.
func (e *Engine) SetProperty(property string) *Engine {
	if e.registry.IsValidProperty(e.current, property) {
		e.req.Property = property
	} else {
		e.req.Property = ""
	}
	return e
}

// SetContent sets the human readable content and, optionally, the machine
// readable value used by meta elements.
func (e *Engine) SetContent(content string, machine ...string) *Engine {
	e.req.Content = content
	e.req.HasContent = true
	e.req.MachineContent = ""
	if len(machine) > 0 {
		e.req.MachineContent = machine[0]
	}
	return e
}

// SetFallback declares the type and property used when the requested property
// is not available, or the scope of a nested property. An unknown type falls
// back to the root; a property the type does not have is dropped.
func (e *Engine) SetFallback(typ, property string) *Engine {
	if !e.registry.IsKnownType(typ) {
		typ = e.registry.RootType()
	}
	e.req.FallbackType = typ
	e.req.FallbackProperty = ""
	if e.registry.IsValidProperty(typ, property) {
		e.req.FallbackProperty = property
	}
	return e
}

// Request returns a copy of the pending render request.
func (e *Engine) Request() Request { return e.req }

// Reset clears the pending request and returns to the root type.
func (e *Engine) Reset() {
	e.req.Reset()
	e.current = e.registry.RootType()
}

// DisplayScope returns the scope attributes of the current type.
func (e *Engine) DisplayScope() string {
	if !e.enabled {
		return ""
	}
	return e.renderer.Scope(e.current)
}
