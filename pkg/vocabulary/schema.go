package vocabulary

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidDefinition = errors.New("invalid vocabulary definition")

// TypeDef declares one vocabulary type: its parent and the properties it adds,
// each mapped to its expected value types in priority order.
type TypeDef struct {
	Extends    string              `json:"extends,omitempty" yaml:"extends,omitempty" toml:"extends,omitempty"`
	Properties map[string][]string `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
}

// Definition is the serializable form of a vocabulary.
type Definition struct {
	Root  string             `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
	Types map[string]TypeDef `json:"types" yaml:"types" toml:"types"`
}

// Schema is a read-only Registry built from a Definition.
type Schema struct {
	root  string
	types map[string]TypeDef
}

var _ Registry = (*Schema)(nil)

// NewSchema validates def and builds a Schema from it. The root defaults to
// Thing, must be declared and must not extend anything; every parent must be
// declared and the inheritance graph must be acyclic.
func NewSchema(def Definition) (*Schema, error) {
	root := def.Root
	if root == "" {
		root = RootType
	}

	rootDef, ok := def.Types[root]
	if !ok {
		return nil, fmt.Errorf("%w: root type %q is not declared", ErrInvalidDefinition, root)
	}
	if rootDef.Extends != "" {
		return nil, fmt.Errorf("%w: root type %q extends %q", ErrInvalidDefinition, root, rootDef.Extends)
	}

	types := make(map[string]TypeDef, len(def.Types))
	for name, td := range def.Types {
		if name == "" {
			return nil, fmt.Errorf("%w: empty type name", ErrInvalidDefinition)
		}
		if td.Extends != "" {
			if _, ok := def.Types[td.Extends]; !ok {
				return nil, fmt.Errorf("%w: type %q extends unknown type %q", ErrInvalidDefinition, name, td.Extends)
			}
		}
		props := make(map[string][]string, len(td.Properties))
		for p, expected := range td.Properties {
			props[p] = append([]string(nil), expected...)
		}
		types[name] = TypeDef{Extends: td.Extends, Properties: props}
	}

	// every chain must reach the root within len(types) steps
	for name := range types {
		cur, steps := name, 0
		for cur != root {
			cur = types[cur].Extends
			steps++
			if cur == "" {
				return nil, fmt.Errorf("%w: type %q does not descend from %q", ErrInvalidDefinition, name, root)
			}
			if steps > len(types) {
				return nil, fmt.Errorf("%w: inheritance cycle through %q", ErrInvalidDefinition, name)
			}
		}
	}

	return &Schema{root: root, types: types}, nil
}

// MustSchema is NewSchema for definitions known to be valid.
func MustSchema(def Definition) *Schema {
	s, err := NewSchema(def)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) RootType() string {
	return s.root
}

func (s *Schema) IsKnownType(name string) bool {
	_, ok := s.types[name]
	return ok
}

func (s *Schema) ParentOf(typ string) (string, bool) {
	td, ok := s.types[typ]
	if !ok || td.Extends == "" {
		return "", false
	}
	return td.Extends, true
}

func (s *Schema) IsValidProperty(typ, property string) bool {
	_, ok := s.lookup(typ, property)
	return ok
}

// ExpectedTypes returns the expected value types of property on typ, or nil
// when the property is not valid for the type.
func (s *Schema) ExpectedTypes(typ, property string) []string {
	expected, ok := s.lookup(typ, property)
	if !ok {
		return nil
	}
	return append([]string(nil), expected...)
}

func (s *Schema) PropertyKind(typ, property string) Kind {
	expected, ok := s.lookup(typ, property)
	if !ok {
		return KindUnknown
	}
	return kindOf(property, expected)
}

// NestedTypeOf returns the default scope type of a nested property, or "" when
// the property is not nested.
func (s *Schema) NestedTypeOf(typ, property string) string {
	expected, ok := s.lookup(typ, property)
	if !ok || kindOf(property, expected) != KindNested {
		return ""
	}
	return expected[0]
}

// Types returns the declared type names, sorted.
func (s *Schema) Types() []string {
	out := make([]string, 0, len(s.types))
	for name := range s.types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Definition returns a copy of the definition the schema was built from.
func (s *Schema) Definition() Definition {
	def := Definition{Root: s.root, Types: make(map[string]TypeDef, len(s.types))}
	for name, td := range s.types {
		props := make(map[string][]string, len(td.Properties))
		for p, expected := range td.Properties {
			props[p] = append([]string(nil), expected...)
		}
		def.Types[name] = TypeDef{Extends: td.Extends, Properties: props}
	}
	return def
}

func (s *Schema) lookup(typ, property string) ([]string, bool) {
	if property == "" {
		return nil, false
	}
	for cur := typ; cur != ""; {
		td, ok := s.types[cur]
		if !ok {
			return nil, false
		}
		if expected, ok := td.Properties[property]; ok {
			return expected, true
		}
		cur = td.Extends
	}
	return nil, false
}
