package parser

import (
	"strings"

	"github.com/cmmoran/sdmarkup/internal/model"
	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

// ParseParam classifies a single directive token:
//
//	Type                    type token, when reg knows the type
//	property                global fallback
//	Type.property           specialized fallback, when reg knows Type
//	property.EType          global fallback with an expected type
//	Type.property.EType     specialized fallback with an expected type
//
// Trailing dots are ignored. A leading dot, an empty inner segment or more
// than three segments yields the zero Token.
func ParseParam(param string, reg vocabulary.TypeChecker) model.Token {
	param = strings.TrimSpace(param)
	if param == "" {
		return model.Token{}
	}

	segs := strings.Split(param, ".")
	for len(segs) > 0 && segs[len(segs)-1] == "" {
		segs = segs[:len(segs)-1]
	}
	if len(segs) == 0 || len(segs) > 3 {
		return model.Token{}
	}
	for _, s := range segs {
		if s == "" {
			return model.Token{}
		}
	}

	switch len(segs) {
	case 1:
		if reg.IsKnownType(segs[0]) {
			return model.Token{Type: segs[0]}
		}
		return model.Token{Property: segs[0]}
	case 2:
		if reg.IsKnownType(segs[0]) {
			return model.Token{Type: segs[0], Property: segs[1]}
		}
		return model.Token{Property: segs[0], ExpectedType: segs[1]}
	default:
		return model.Token{Type: segs[0], Property: segs[1], ExpectedType: segs[2]}
	}
}

// Tokenize splits a directive on whitespace and classifies each token, in
// order. Malformed tokens are kept as zero Tokens.
func Tokenize(directive string, reg vocabulary.TypeChecker) []model.Token {
	fields := strings.Fields(directive)
	out := make([]model.Token, 0, len(fields))
	for _, f := range fields {
		out = append(out, ParseParam(f, reg))
	}
	return out
}
