package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(ttt *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr bool
	}{
		{
			name: "root only",
			def:  Definition{Types: map[string]TypeDef{"Thing": {}}},
		},
		{
			name: "custom root",
			def: Definition{Root: "Entity", Types: map[string]TypeDef{
				"Entity": {},
				"Widget": {Extends: "Entity"},
			}},
		},
		{
			name:    "missing root",
			def:     Definition{Types: map[string]TypeDef{"Article": {}}},
			wantErr: true,
		},
		{
			name: "root with parent",
			def: Definition{Types: map[string]TypeDef{
				"Thing":   {Extends: "Article"},
				"Article": {Extends: "Thing"},
			}},
			wantErr: true,
		},
		{
			name: "unknown parent",
			def: Definition{Types: map[string]TypeDef{
				"Thing":   {},
				"Article": {Extends: "CreativeWork"},
			}},
			wantErr: true,
		},
		{
			name: "detached type",
			def: Definition{Types: map[string]TypeDef{
				"Thing":  {},
				"Orphan": {},
			}},
			wantErr: true,
		},
		{
			name: "cycle",
			def: Definition{Types: map[string]TypeDef{
				"Thing": {},
				"A":     {Extends: "B"},
				"B":     {Extends: "A"},
			}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.def)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDefinition)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestDefaultSchema(t *testing.T) {
	s := Default()

	assert.Equal(t, "Thing", s.RootType())
	assert.True(t, s.IsKnownType("Article"))
	assert.True(t, s.IsKnownType("Language"))
	assert.False(t, s.IsKnownType("TypeThatDoesNotExist"))
	assert.False(t, s.IsKnownType("article"))

	parent, ok := s.ParentOf("Article")
	require.True(t, ok)
	assert.Equal(t, "CreativeWork", parent)
	_, ok = s.ParentOf("Thing")
	assert.False(t, ok)

	// inherited from Thing and CreativeWork
	assert.True(t, s.IsValidProperty("Article", "url"))
	assert.True(t, s.IsValidProperty("Article", "author"))
	assert.True(t, s.IsValidProperty("Article", "articleBody"))
	assert.False(t, s.IsValidProperty("Person", "articleBody"))
	assert.False(t, s.IsValidProperty("Article", "anUnavailableProperty"))
	assert.False(t, s.IsValidProperty("TypeThatDoesNotExist", "name"))
	assert.False(t, s.IsValidProperty("Article", ""))
}

func TestPropertyKind(ttt *testing.T) {
	s := Default()
	tests := []struct {
		typ, property string
		want          Kind
		nested        string
	}{
		{"Article", "name", KindText, ""},
		{"Article", "url", KindText, ""},
		{"Article", "datePublished", KindMeta, ""},
		{"Article", "interactionCount", KindMeta, ""},
		{"Event", "doorTime", KindMeta, ""},
		{"Article", "author", KindNested, "Organization"},
		{"Article", "about", KindNested, "Thing"},
		{"Person", "nationality", KindNested, "Country"},
		{"Article", "nope", KindUnknown, ""},
	}
	for _, tt := range tests {
		ttt.Run(tt.typ+"."+tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, s.PropertyKind(tt.typ, tt.property))
			assert.Equal(t, tt.nested, s.NestedTypeOf(tt.typ, tt.property))
		})
	}
}

func TestSchemaDefinitionIsCopy(t *testing.T) {
	s := MustSchema(Definition{Types: map[string]TypeDef{
		"Thing": {Properties: map[string][]string{"name": {"Text"}}},
	}})

	def := s.Definition()
	def.Types["Thing"].Properties["name"][0] = "Date"

	assert.Equal(t, KindText, s.PropertyKind("Thing", "name"))
	assert.Equal(t, []string{"Thing"}, s.Types())
	assert.Equal(t, []string{"Text"}, s.ExpectedTypes("Thing", "name"))
}
