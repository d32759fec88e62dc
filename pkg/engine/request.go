package engine

// Request is the per-render state of an Engine. Empty strings mean unset;
// content is tracked separately because an empty content still renders.
type Request struct {
	Property         string
	Content          string
	HasContent       bool
	MachineContent   string
	FallbackType     string
	FallbackProperty string
}

// Reset clears every field. The engine calls it at the end of each render.
func (r *Request) Reset() {
	*r = Request{}
}

// IsZero reports whether no field is set.
func (r Request) IsZero() bool {
	return r == Request{}
}

// machine returns the value for a machine readable element.
func (r Request) machine() string {
	if r.MachineContent != "" {
		return r.MachineContent
	}
	return r.Content
}
