package parser

import (
	"github.com/cmmoran/sdmarkup/internal/model"
	"github.com/cmmoran/sdmarkup/pkg/engine"
)

// Outcome tells what a directive turned into.
type Outcome int

const (
	OutcomeDropped  Outcome = iota // nothing emitted
	OutcomeScope                   // scope of the new current type
	OutcomeProperty                // a property, possibly with a nested scope
)

func (o Outcome) String() string {
	switch o {
	case OutcomeScope:
		return "scope"
	case OutcomeProperty:
		return "property"
	default:
		return "dropped"
	}
}

// Apply renders a plan through e:
//
//   - SetType, when present, becomes the current type;
//   - a plan without fallbacks emits the scope of SetType, if any;
//   - otherwise the first fallback the current type has wins, specialized
//     ones before global ones, and is emitted inline; its expected type, if
//     any, adds a scope for the property value;
//   - when no fallback fits nothing is emitted.
func Apply(plan model.Plan, e *engine.Engine) (string, Outcome) {
	if plan.SetType != "" {
		e.SetType(plan.SetType)
	}

	if !plan.HasFallbacks() {
		if plan.SetType != "" {
			return e.DisplayScope(), OutcomeScope
		}
		return "", OutcomeDropped
	}

	reg, cur := e.Registry(), e.Type()
	for _, f := range plan.For(cur) {
		if !reg.IsValidProperty(cur, f.Property) {
			continue
		}
		e.SetProperty(f.Property)
		if f.ExpectedType != "" {
			e.SetFallback(f.ExpectedType, "")
		}
		return e.Display(engine.DisplayInline, false), OutcomeProperty
	}

	return "", OutcomeDropped
}
