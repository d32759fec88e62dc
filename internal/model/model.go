package model

// Token is one classified directive token. Empty fields are unset; a token
// with no field set is malformed and ignored.
type Token struct {
	Type         string // vocabulary type, "Article"
	Property     string // property name, "author"
	ExpectedType string // scope override for the property value, "Person"
}

// IsZero reports whether the token carries nothing.
func (t Token) IsZero() bool {
	return t == Token{}
}

// IsTypeOnly reports whether the token only names a type.
func (t Token) IsTypeOnly() bool {
	return t.Type != "" && t.Property == ""
}

// Fallback is a candidate property with an optional expected type.
type Fallback struct {
	Property     string
	ExpectedType string
}
