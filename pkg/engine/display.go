package engine

import (
	"github.com/cmmoran/sdmarkup/pkg/markup"
	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

// Display renders the pending request and resets it.
//
// A disabled engine returns the content unchanged, or "" when emptyOutput is
// set. Otherwise the requested property wins when the current type has it,
// then the fallback property inside the fallback scope, then the bare
// fallback scope.
func (e *Engine) Display(mode DisplayMode, emptyOutput bool) string {
	defer e.req.Reset()

	if !e.enabled {
		if emptyOutput || !e.req.HasContent {
			return ""
		}
		return e.req.Content
	}

	switch {
	case e.req.Property != "":
		return e.displayProperty(mode)
	case e.req.FallbackProperty != "":
		return e.displayFallback(mode)
	case e.req.FallbackType != "":
		return e.renderer.Scope(e.req.FallbackType)
	}
	return ""
}

func (e *Engine) displayProperty(mode DisplayMode) string {
	r, q := e.renderer, e.req

	switch mode {
	case DisplayInline:
		out := r.Property(q.Property)
		if q.FallbackType != "" {
			out += " " + r.Scope(q.FallbackType)
			if q.FallbackProperty != "" {
				out += " " + r.Property(q.FallbackProperty)
			}
		}
		return out
	case DisplaySpan:
		return markup.Span(r, q.Content, q.Property, "", false)
	case DisplayDiv:
		return markup.Div(r, q.Content, q.Property, "", false)
	case DisplayMeta:
		return markup.Meta(r, q.machine(), q.Property, "", false)
	}

	switch e.registry.PropertyKind(e.current, q.Property) {
	case vocabulary.KindNested:
		scope := e.registry.NestedTypeOf(e.current, q.Property)
		if q.FallbackType != "" {
			scope = q.FallbackType
		}
		if q.HasContent {
			inner := q.Content
			if q.FallbackProperty != "" {
				inner = markup.Span(r, q.Content, q.FallbackProperty, "", false)
			}
			return markup.Span(r, inner, q.Property, scope, true)
		}
		out := markup.Attributes(r, q.Property, scope, true)
		if q.FallbackProperty != "" {
			out += " " + r.Property(q.FallbackProperty)
		}
		return out

	case vocabulary.KindMeta:
		if q.HasContent {
			return markup.Meta(r, q.machine(), q.Property, "", false) + q.Content
		}
		return r.Property(q.Property)

	default:
		if q.HasContent {
			return markup.Span(r, q.Content, q.Property, "", false)
		}
		return r.Property(q.Property)
	}
}

func (e *Engine) displayFallback(mode DisplayMode) string {
	r, q := e.renderer, e.req

	switch mode {
	case DisplaySpan:
		return markup.Span(r, q.Content, q.FallbackProperty, q.FallbackType, false)
	case DisplayDiv:
		return markup.Div(r, q.Content, q.FallbackProperty, q.FallbackType, false)
	case DisplayMeta:
		return markup.Meta(r, q.machine(), q.FallbackProperty, q.FallbackType, false)
	case DisplayInline:
		return markup.Attributes(r, q.FallbackProperty, q.FallbackType, false)
	}

	if !q.HasContent {
		return markup.Attributes(r, q.FallbackProperty, q.FallbackType, false)
	}
	if e.registry.PropertyKind(q.FallbackType, q.FallbackProperty) == vocabulary.KindMeta {
		return markup.Meta(r, q.machine(), q.FallbackProperty, q.FallbackType, false)
	}
	return markup.Span(r, markup.Span(r, q.Content, q.FallbackProperty, "", false), "", q.FallbackType, false)
}
