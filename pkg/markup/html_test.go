package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemantic(ttt *testing.T) {
	tests := []struct {
		name    string
		want    Semantic
		wantErr bool
	}{
		{"Microdata", Microdata, false},
		{"microdata", Microdata, false},
		{"RDFa", RDFa, false},
		{" rdfa ", RDFa, false},
		{"doesNotExist", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := ParseSemantic(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSemantic)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NewRenderer(Semantic(42))
	require.ErrorIs(ttt, err, ErrUnknownSemantic)
	assert.Equal(ttt, "microdata", Microdata.String())
	assert.Equal(ttt, "rdfa", RDFa.String())
}

func TestMicrodataHelpers(t *testing.T) {
	r, err := RendererFor("Microdata")
	require.NoError(t, err)

	const scope = "https://schema.org/Article"

	assert.Equal(t,
		"<meta itemscope itemtype='"+scope+"' itemprop='datePublished' content='anything'/>",
		Meta(r, "anything", "datePublished", "Article", false))
	assert.Equal(t,
		"<meta itemprop='datePublished' itemscope itemtype='"+scope+"' content='anything'/>",
		Meta(r, "anything", "datePublished", "Article", true))
	assert.Equal(t,
		"<meta itemprop='datePublished' content='anything'/>",
		Meta(r, "anything", "datePublished", "", false))
	assert.Equal(t,
		"<meta itemprop='publisher' content='O&#39;Reilly'/>",
		Meta(r, "O'Reilly", "publisher", "", false))

	assert.Equal(t,
		"<div itemscope itemtype='"+scope+"' itemprop='about'>microdata</div>",
		Div(r, "microdata", "about", "Article", false))
	assert.Equal(t,
		"<div itemprop='about' itemscope itemtype='"+scope+"'>microdata</div>",
		Div(r, "microdata", "about", "Article", true))
	assert.Equal(t, "<div itemprop='about'>microdata</div>", Div(r, "microdata", "about", "", false))
	assert.Equal(t, "<div itemscope itemtype='"+scope+"'>microdata</div>", Div(r, "microdata", "", "Article", false))
	assert.Equal(t, "<div>microdata</div>", Div(r, "microdata", "", "", false))

	assert.Equal(t,
		"<span itemscope itemtype='"+scope+"' itemprop='about'>anything</span>",
		Span(r, "anything", "about", "Article", false))
	assert.Equal(t,
		"<span itemprop='about' itemscope itemtype='"+scope+"'>anything</span>",
		Span(r, "anything", "about", "Article", true))
	assert.Equal(t, "<span itemprop='about'>anything</span>", Span(r, "anything", "about", "", false))
	assert.Equal(t, "<span>anything</span>", Span(r, "anything", "", "", false))
}

func TestRDFaHelpers(t *testing.T) {
	r, err := RendererFor("RDFa")
	require.NoError(t, err)
	require.Equal(t, RDFa, r.Semantic())

	assert.Equal(t, "property='name'", r.Property("name"))
	assert.Equal(t, "vocab='https://schema.org/' typeof='Person'", r.Scope("Person"))
	assert.Equal(t,
		"<span property='author' vocab='https://schema.org/' typeof='Person'>Alex</span>",
		Span(r, "Alex", "author", "Person", true))
	assert.Equal(t,
		"<meta property='datePublished' content='2014-01-01'/>",
		Meta(r, "2014-01-01", "datePublished", "", false))
}
