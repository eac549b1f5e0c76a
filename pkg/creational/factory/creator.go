package factory

// Creator builds products of exactly one variant.
type Creator interface {
	// CreateProduct returns a new product. The caller owns it.
	CreateProduct() Product
}

// CreatorFunc adapts an ordinary function to the Creator interface.
type CreatorFunc func() Product

// CreateProduct calls f.
func (f CreatorFunc) CreateProduct() Product {
	return f()
}

// CreatorA builds ProductA.
type CreatorA struct{}

// CreateProduct returns a new *ProductA.
func (CreatorA) CreateProduct() Product {
	return newProductA()
}

// CreatorB builds ProductB.
type CreatorB struct{}

// CreateProduct returns a new *ProductB.
func (CreatorB) CreateProduct() Product {
	return newProductB()
}

var (
	_ Creator = CreatorA{}
	_ Creator = CreatorB{}
	_ Creator = CreatorFunc(nil)
)
