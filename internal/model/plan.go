package model

// Plan is the resolution of one directive.
type Plan struct {
	// SetType is the type to make current, "" when none was given.
	SetType string
	// Specialized holds fallbacks that only apply while their type is current.
	Specialized map[string]Fallbacks
	// Global holds fallbacks usable under any type, in priority order.
	Global Fallbacks
}

// NewPlan returns an empty plan.
func NewPlan() Plan {
	return Plan{Specialized: make(map[string]Fallbacks)}
}

// HasFallbacks reports whether the plan names any property.
func (p Plan) HasFallbacks() bool {
	return len(p.Global) > 0 || len(p.Specialized) > 0
}

// For returns the candidates that apply under typ: its specialized fallbacks
// first, then the global ones.
func (p Plan) For(typ string) Fallbacks {
	spec := p.Specialized[typ]
	out := make(Fallbacks, 0, len(spec)+len(p.Global))
	out = append(out, spec...)
	return append(out, p.Global...)
}

type Fallbacks []Fallback

// Find returns the fallback declared for property.
func (x Fallbacks) Find(property string) (Fallback, bool) {
	for _, f := range x {
		if f.Property == property {
			return f, true
		}
	}
	return Fallback{}, false
}

// Set records a fallback. A property already present keeps its position and
// takes the new expected type.
func (x Fallbacks) Set(f Fallback) Fallbacks {
	for i := range x {
		if x[i].Property == f.Property {
			x[i].ExpectedType = f.ExpectedType
			return x
		}
	}
	return append(x, f)
}
