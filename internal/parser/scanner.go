package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// Rewrite copies src and, for every start or self-closing tag, replaces the
// first attribute accepted by match with replace(value). The attribute name
// handed to match is lower-cased; the value is entity-decoded. Everything
// else, including later matching attributes on the same tag, is copied
// verbatim.
func Rewrite(src string, match func(name string) bool, replace func(value string) string) string {
	var b strings.Builder
	b.Grow(len(src))

	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		raw := z.Raw()
		switch tt {
		case html.ErrorToken:
			// io.EOF; a tag cut off by the end of input is still in raw
			b.Write(raw)
			return b.String()
		case html.StartTagToken, html.SelfClosingTagToken:
			b.WriteString(rewriteTag(string(raw), match, replace))
		default:
			b.Write(raw)
		}
	}
}

// attrSpan locates one attribute inside a raw tag.
type attrSpan struct {
	name       string
	start, end int // whole attribute, name through closing quote
	value      string
}

// rewriteTag rewrites the first matching attribute of a single raw tag.
func rewriteTag(raw string, match func(string) bool, replace func(string) string) string {
	var (
		found     attrSpan
		rewritten bool
	)

	i := 1
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}
	for i < len(raw) && !rewritten {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		var a attrSpan
		a, i = scanAttr(raw, i)
		if match(strings.ToLower(a.name)) {
			found, rewritten = a, true
		}
	}

	if !rewritten {
		return raw
	}
	return raw[:found.start] + replace(html.UnescapeString(found.value)) + raw[found.end:]
}

// scanAttr reads the attribute starting at i and returns it with the index
// just past it.
func scanAttr(raw string, i int) (attrSpan, int) {
	a := attrSpan{start: i}

	// a leading '=' belongs to the name
	if raw[i] == '=' {
		i++
	}
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' && raw[i] != '=' {
		i++
	}
	a.name = raw[a.start:i]
	a.end = i

	j := skipSpace(raw, i)
	if j >= len(raw) || raw[j] != '=' {
		return a, i
	}
	j = skipSpace(raw, j+1)
	if j >= len(raw) {
		a.end = j
		return a, j
	}

	if q := raw[j]; q == '\'' || q == '"' {
		k := strings.IndexByte(raw[j+1:], q)
		if k < 0 {
			// unterminated; the value runs to the closing '>'
			end := len(raw)
			if strings.HasSuffix(raw, ">") {
				end--
			}
			a.value = raw[j+1 : end]
			a.end = end
			return a, end
		}
		a.value = raw[j+1 : j+1+k]
		a.end = j + 2 + k
		return a, a.end
	}

	k := j
	for k < len(raw) && !isSpace(raw[k]) && raw[k] != '>' {
		k++
	}
	a.value = raw[j:k]
	a.end = k
	return a, k
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
