package factory

import "github.com/google/uuid"

// Markers returned by the built-in products' Use.
const (
	MarkerA = "Using ConcreteProductA"
	MarkerB = "Using ConcreteProductB"
)

// Product is the capability every variant provides.
type Product interface {
	// Use performs the variant-specific action and returns its marker.
	Use() string

	// Variant reports which variant produced this product.
	Variant() Variant

	// ID is unique per product.
	ID() string
}

// ProductA is the product built by CreatorA.
type ProductA struct {
	id string
}

var _ Product = (*ProductA)(nil)

func newProductA() *ProductA {
	return &ProductA{id: uuid.NewString()}
}

// Use returns MarkerA.
func (p *ProductA) Use() string { return MarkerA }

// Variant returns VariantA.
func (p *ProductA) Variant() Variant { return VariantA }

// ID returns the product's identifier.
func (p *ProductA) ID() string { return p.id }

// ProductB is the product built by CreatorB.
type ProductB struct {
	id string
}

var _ Product = (*ProductB)(nil)

func newProductB() *ProductB {
	return &ProductB{id: uuid.NewString()}
}

// Use returns MarkerB.
func (p *ProductB) Use() string { return MarkerB }

// Variant returns VariantB.
func (p *ProductB) Variant() Variant { return VariantB }

// ID returns the product's identifier.
func (p *ProductB) ID() string { return p.id }
