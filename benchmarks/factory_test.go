package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/creational/pkg/creational/factory"
)

// BenchmarkCreateProduct measures direct creation through the interface.
func BenchmarkCreateProduct(b *testing.B) {
	var creator factory.Creator = factory.CreatorA{}
	for i := 0; i < b.N; i++ {
		creator.CreateProduct()
	}
}

// BenchmarkCreateProduct_Parallel measures creation from many goroutines.
func BenchmarkCreateProduct_Parallel(b *testing.B) {
	var creator factory.Creator = factory.CreatorB{}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			creator.CreateProduct()
		}
	})
}

// BenchmarkCatalogProduce measures lookup plus instrumentation with no-op hooks.
func BenchmarkCatalogProduce(b *testing.B) {
	catalog := factory.DefaultCatalog(factory.WithLogger(nil))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = catalog.Produce(ctx, factory.VariantA)
	}
}

// BenchmarkCatalogProduce_Unknown measures the error path.
func BenchmarkCatalogProduce_Unknown(b *testing.B) {
	catalog := factory.DefaultCatalog(factory.WithLogger(nil))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = catalog.Produce(ctx, "Z")
	}
}
