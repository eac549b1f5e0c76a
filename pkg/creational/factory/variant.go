package factory

import "strings"

// Variant names one member of a product family.
type Variant string

// Built-in variants.
const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

// String returns the variant name.
func (v Variant) String() string {
	return string(v)
}

// ParseVariant normalizes a user-supplied name: surrounding space is trimmed
// and letters are upper-cased. It does not check that the variant is registered.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", ErrEmptyVariant
	}
	return Variant(s), nil
}
