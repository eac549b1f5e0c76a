package factory

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog registration.
var (
	// ErrEmptyVariant indicates a blank variant name.
	ErrEmptyVariant = errors.New("variant name is empty")

	// ErrNilCreator indicates Register was given a nil creator.
	ErrNilCreator = errors.New("creator is nil")

	// ErrDuplicateVariant indicates a creator is already registered for the variant.
	ErrDuplicateVariant = errors.New("variant already registered")
)

// Sentinel errors for production.
var (
	// ErrUnknownVariant indicates no creator is registered for the variant.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrNilProduct indicates a creator returned nil.
	ErrNilProduct = errors.New("creator returned nil product")
)

// VariantError wraps a catalog error with the variant and operation involved.
type VariantError struct {
	// Variant is the variant that was requested or registered.
	Variant Variant
	// Op is the catalog operation ("register", "lookup", "produce").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *VariantError) Error() string {
	return fmt.Sprintf("%s variant %q: %v", e.Op, e.Variant, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *VariantError) Unwrap() error {
	return e.Err
}
