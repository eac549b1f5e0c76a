package factory

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/creational/pkg/creational/observability"
	"github.com/randalmurphal/creational/pkg/creational/registry"
)

// Catalog maps variants to the creators that build them.
// All methods are safe for concurrent use.
type Catalog struct {
	creators *registry.Registry[Variant, Creator]
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *Catalog) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpans sets the span manager. Default: observability.NoopSpanManager.
func WithSpans(s observability.SpanManager) Option {
	return func(c *Catalog) {
		if s != nil {
			c.spans = s
		}
	}
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		creators: registry.New[Variant, Creator](),
		logger:   slog.Default(),
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultCatalog returns a catalog holding CreatorA and CreatorB.
func DefaultCatalog(opts ...Option) *Catalog {
	c := NewCatalog(opts...)
	c.MustRegister(VariantA, CreatorA{})
	c.MustRegister(VariantB, CreatorB{})
	return c
}

// Register binds creator to variant. A variant can be bound only once.
func (c *Catalog) Register(variant Variant, creator Creator) error {
	if variant == "" {
		return &VariantError{Variant: variant, Op: "register", Err: ErrEmptyVariant}
	}
	if creator == nil {
		return &VariantError{Variant: variant, Op: "register", Err: ErrNilCreator}
	}
	if err := c.creators.Register(variant, creator); err != nil {
		if errors.Is(err, registry.ErrDuplicateKey) {
			err = ErrDuplicateVariant
		}
		return &VariantError{Variant: variant, Op: "register", Err: err}
	}
	observability.LogCreatorRegistered(c.logger, variant.String())
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(variant Variant, creator Creator) {
	if err := c.Register(variant, creator); err != nil {
		panic(err)
	}
}

// Creator returns the creator bound to variant.
func (c *Catalog) Creator(variant Variant) (Creator, error) {
	creator, ok := c.creators.Lookup(variant)
	if !ok {
		return nil, &VariantError{Variant: variant, Op: "lookup", Err: ErrUnknownVariant}
	}
	return creator, nil
}

// Has reports whether a creator is bound to variant.
func (c *Catalog) Has(variant Variant) bool {
	return c.creators.Has(variant)
}

// Variants returns the registered variants in sorted order.
func (c *Catalog) Variants() []Variant {
	variants := c.creators.Keys()
	slices.Sort(variants)
	return variants
}

// Produce builds a product of the given variant.
func (c *Catalog) Produce(ctx context.Context, variant Variant) (Product, error) {
	ctx, span := c.spans.StartProduceSpan(ctx, variant.String())
	start := time.Now()

	product, err := c.produce(variant)

	elapsed := time.Since(start)
	c.metrics.RecordProduct(ctx, variant.String(), elapsed, err)
	if err != nil {
		observability.LogProductError(c.logger, variant.String(), err)
		c.spans.EndSpanWithError(span, err)
		return nil, err
	}

	c.spans.AddSpanEvent(ctx, "product.created", attribute.String("product.id", product.ID()))
	c.spans.EndSpanWithError(span, nil)
	observability.LogProductCreated(c.logger, variant.String(), product.ID(),
		float64(elapsed.Microseconds())/1000)
	return product, nil
}

func (c *Catalog) produce(variant Variant) (Product, error) {
	creator, err := c.Creator(variant)
	if err != nil {
		return nil, err
	}
	product := creator.CreateProduct()
	if product == nil {
		return nil, &VariantError{Variant: variant, Op: "produce", Err: ErrNilProduct}
	}
	return product, nil
}
