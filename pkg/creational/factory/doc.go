// Package factory implements the factory method pattern: a Creator yields a
// Product, and client code depends only on those two interfaces.
//
// # Variants
//
// Two variant pairs ship with the package:
//
//	CreatorA{}.CreateProduct().Use() // "Using ConcreteProductA"
//	CreatorB{}.CreateProduct().Use() // "Using ConcreteProductB"
//
// A new variant is one new Product type plus one new Creator (or a
// CreatorFunc). Nothing existing has to change:
//
//	type ProductC struct{ id string }
//	// ... implement Product ...
//	catalog.Register("C", factory.CreatorFunc(func() factory.Product {
//	    return &ProductC{id: uuid.NewString()}
//	}))
//
// # Catalog
//
// Catalog maps variant names to creators and instruments every request with
// logging, metrics, and a trace span:
//
//	catalog := factory.DefaultCatalog(factory.WithLogger(logger))
//	p, err := catalog.Produce(ctx, factory.VariantB)
//
// # Ownership
//
// Every CreateProduct call returns a fresh product owned by the caller.
// Creators keep no references to what they create and are safe for
// concurrent use.
package factory
