package parser

import "strings"

// normalizeSuffix lower-cases a directive suffix and reports whether it can
// be part of an attribute name.
func normalizeSuffix(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if strings.ContainsAny(s, " \t\n\r\f\"'>/=") {
		return "", false
	}
	return s, true
}

// splitSuffixes splits a suffix list on common delimiters.
func splitSuffixes(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ','
	})
}

func containsSuffix(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// attributeSuffix returns the suffix of a lower-cased directive attribute
// name, or false when name does not carry the prefix.
func attributeSuffix(name string) (string, bool) {
	if !strings.HasPrefix(name, AttributePrefix) {
		return "", false
	}
	return name[len(AttributePrefix):], true
}
