package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite(ttt *testing.T) {
	match := func(name string) bool { return name == "data-sd" || name == "data-custom" }
	replace := func(value string) string { return "[" + value + "]" }

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "single quoted",
			src:  "<tag data-sd='url'>content</tag>",
			want: "<tag [url]>content</tag>",
		},
		{
			name: "double quoted",
			src:  `<tag class="x" data-sd="Article author">content</tag>`,
			want: `<tag class="x" [Article author]>content</tag>`,
		},
		{
			name: "unquoted",
			src:  "<tag data-sd=url>content</tag>",
			want: "<tag [url]>content</tag>",
		},
		{
			name: "first match only",
			src:  "<tag data-sd='Article.author' data-custom='Article.name'>c</tag>",
			want: "<tag [Article.author] data-custom='Article.name'>c</tag>",
		},
		{
			name: "second registered attribute is first on its own element",
			src:  "<tag data-custom='a'>c</tag><tag data-sd='b'>c</tag>",
			want: "<tag [a]>c</tag><tag [b]>c</tag>",
		},
		{
			name: "unregistered left untouched",
			src:  "<tag data-unregistered='Article.author'>c</tag>",
			want: "<tag data-unregistered='Article.author'>c</tag>",
		},
		{
			name: "self closing",
			src:  "<meta data-sd='Article datePublished' content='2014-01-01T00:00:00+00:00' />",
			want: "<meta [Article datePublished] content='2014-01-01T00:00:00+00:00' />",
		},
		{
			name: "case insensitive name",
			src:  "<TAG DATA-SD='url'>x</TAG>",
			want: "<TAG [url]>x</TAG>",
		},
		{
			name: "entity decoded value",
			src:  "<tag data-sd='a&amp;b'>x</tag>",
			want: "<tag [a&b]>x</tag>",
		},
		{
			name: "quoted value containing a bracket",
			src:  "<tag title='a > b' data-sd='url'>x</tag>",
			want: "<tag title='a > b' [url]>x</tag>",
		},
		{
			name: "comments and text untouched",
			src:  "<!-- <tag data-sd='url'> -->text data-sd='url'",
			want: "<!-- <tag data-sd='url'> -->text data-sd='url'",
		},
		{
			name: "end tags untouched",
			src:  "</tag data-sd='url'>",
			want: "</tag data-sd='url'>",
		},
		{
			name: "valueless attributes",
			src:  "<input disabled data-sd='name' checked>",
			want: "<input disabled [name] checked>",
		},
		{
			name: "truncated tag is copied",
			src:  "<p>ok</p><tag data-sd='url'",
			want: "<p>ok</p><tag data-sd='url'",
		},
		{
			name: "no markup",
			src:  "plain text",
			want: "plain text",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(tt.src, match, replace))
		})
	}
}

func TestRewritePreservesInput(t *testing.T) {
	src := strings.Repeat("<div class='a'><p id=x>text &amp; more</p><br/><script>if (a < b) {}</script></div>\n", 20)
	assert.Equal(t, src, Rewrite(src, func(string) bool { return false }, nil))
}
