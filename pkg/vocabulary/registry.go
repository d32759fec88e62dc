package vocabulary

// RootType is the type every vocabulary type ultimately extends.
const RootType = "Thing"

// Kind classifies how a property value is rendered.
type Kind int

const (
	KindUnknown Kind = iota
	KindText         // plain text, rendered in a span
	KindMeta         // machine readable value (dates), rendered in a meta tag
	KindNested       // value is itself a vocabulary type with its own scope
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMeta:
		return "meta"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// TypeChecker is the part of a Registry the directive tokenizer needs.
type TypeChecker interface {
	IsKnownType(name string) bool
}

// Registry answers type and property lookups for a vocabulary.
//
// Property lookups follow the parent chain, so a property declared on Thing
// is valid for every type.
type Registry interface {
	TypeChecker
	IsValidProperty(typ, property string) bool
	PropertyKind(typ, property string) Kind
	NestedTypeOf(typ, property string) string
	ParentOf(typ string) (string, bool)
	RootType() string
}

// kindOf decides the rendering kind from a property's expected types. Only
// the first expected type counts.
func kindOf(property string, expected []string) Kind {
	if property == "interactionCount" {
		return KindMeta
	}
	if len(expected) == 0 {
		return KindText
	}
	switch expected[0] {
	case "Date", "DateTime":
		return KindMeta
	case "Text", "URL", "Boolean", "Number", "Integer", "Float", "Time":
		return KindText
	default:
		return KindNested
	}
}
