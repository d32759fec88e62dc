package markup

import "strings"

// Attributes joins the scope and property attributes of an element. Either
// may be empty. Scope comes first unless inverse is set.
func Attributes(r Renderer, property, scope string, inverse bool) string {
	parts := make([]string, 0, 2)
	if property != "" {
		parts = append(parts, r.Property(property))
	}
	if scope != "" {
		if inverse {
			parts = append(parts, r.Scope(scope))
		} else {
			parts = append([]string{r.Scope(scope)}, parts...)
		}
	}
	return strings.Join(parts, " ")
}

var contentQuote = strings.NewReplacer("'", "&#39;")

// Meta returns a self-closing meta element carrying content as its machine
// readable value. Apostrophes in content are escaped.
func Meta(r Renderer, content, property, scope string, inverse bool) string {
	return "<meta" + leading(Attributes(r, property, scope, inverse)) + " content='" + contentQuote.Replace(content) + "'/>"
}

// Div wraps content in a div element.
func Div(r Renderer, content, property, scope string, inverse bool) string {
	return wrap("div", Attributes(r, property, scope, inverse), content)
}

// Span wraps content in a span element.
func Span(r Renderer, content, property, scope string, inverse bool) string {
	return wrap("span", Attributes(r, property, scope, inverse), content)
}

func wrap(tag, attrs, content string) string {
	return "<" + tag + leading(attrs) + ">" + content + "</" + tag + ">"
}

func leading(attrs string) string {
	if attrs == "" {
		return ""
	}
	return " " + attrs
}
