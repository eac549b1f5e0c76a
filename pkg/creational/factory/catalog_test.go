package factory

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/randalmurphal/creational/pkg/creational/observability"
)

// recordingMetrics captures RecordProduct calls.
type recordingMetrics struct {
	observability.NoopMetrics

	mu       sync.Mutex
	variants []string
	errs     []error
}

func (m *recordingMetrics) RecordProduct(_ context.Context, variant string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variants = append(m.variants, variant)
	m.errs = append(m.errs, err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog(WithLogger(discardLogger()))

	assert.Equal(t, []Variant{VariantA, VariantB}, c.Variants())
	assert.True(t, c.Has(VariantA))
	assert.True(t, c.Has(VariantB))
	assert.False(t, c.Has("C"))
}

func TestCatalogProduceEachVariant(t *testing.T) {
	c := DefaultCatalog(WithLogger(nil))
	ctx := context.Background()

	for variant, marker := range map[Variant]string{VariantA: MarkerA, VariantB: MarkerB} {
		p, err := c.Produce(ctx, variant)
		require.NoError(t, err)
		assert.Equal(t, marker, p.Use())
		assert.Equal(t, variant, p.Variant())
	}
}

func TestCatalogProduceUnknown(t *testing.T) {
	c := DefaultCatalog(WithLogger(nil))

	p, err := c.Produce(context.Background(), "Z")
	assert.Nil(t, p)
	require.ErrorIs(t, err, ErrUnknownVariant)

	var verr *VariantError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, Variant("Z"), verr.Variant)
	assert.Equal(t, "lookup", verr.Op)
}

func TestCatalogProduceNilProduct(t *testing.T) {
	c := NewCatalog(WithLogger(nil))
	require.NoError(t, c.Register("NIL", CreatorFunc(func() Product { return nil })))

	_, err := c.Produce(context.Background(), "NIL")
	assert.ErrorIs(t, err, ErrNilProduct)
}

func TestCatalogRegisterErrors(t *testing.T) {
	c := DefaultCatalog(WithLogger(nil))

	tests := []struct {
		name    string
		variant Variant
		creator Creator
		want    error
	}{
		{"empty variant", "", CreatorA{}, ErrEmptyVariant},
		{"nil creator", "C", nil, ErrNilCreator},
		{"duplicate", VariantA, CreatorB{}, ErrDuplicateVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Register(tt.variant, tt.creator)
			require.ErrorIs(t, err, tt.want)

			var verr *VariantError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "register", verr.Op)
		})
	}

	// The original binding is untouched by the failed duplicate.
	creator, err := c.Creator(VariantA)
	require.NoError(t, err)
	assert.Equal(t, MarkerA, creator.CreateProduct().Use())
}

func TestCatalogMustRegisterPanics(t *testing.T) {
	c := DefaultCatalog(WithLogger(nil))
	assert.Panics(t, func() {
		c.MustRegister(VariantA, CreatorA{})
	})
}

func TestCatalogRegisterLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewCatalog(WithLogger(logger))
	require.NoError(t, c.Register(VariantA, CreatorA{}))
	_, err := c.Produce(context.Background(), VariantA)
	require.NoError(t, err)
	_, err = c.Produce(context.Background(), "Q")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "creator registered")
	assert.Contains(t, out, "product created")
	assert.Contains(t, out, "product creation failed")
	assert.Contains(t, out, "variant=Q")
}

func TestCatalogRecordsMetrics(t *testing.T) {
	m := &recordingMetrics{}
	c := DefaultCatalog(WithLogger(nil), WithMetrics(m))
	ctx := context.Background()

	_, _ = c.Produce(ctx, VariantA)
	_, _ = c.Produce(ctx, VariantB)
	_, _ = c.Produce(ctx, "Z")

	assert.Equal(t, []string{"A", "B", "Z"}, m.variants)
	require.Len(t, m.errs, 3)
	assert.NoError(t, m.errs[0])
	assert.NoError(t, m.errs[1])
	assert.True(t, errors.Is(m.errs[2], ErrUnknownVariant))
}

func TestCatalogTracesProduce(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})

	c := DefaultCatalog(WithLogger(nil), WithSpans(observability.NewSpanManager()))

	p, err := c.Produce(context.Background(), VariantB)
	require.NoError(t, err)
	_, err = c.Produce(context.Background(), "Z")
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, "creational.produce", ok.Name)
	assert.Equal(t, codes.Ok, ok.Status.Code)
	require.Len(t, ok.Events, 1)
	assert.Equal(t, "product.created", ok.Events[0].Name)
	assert.Equal(t, p.ID(), ok.Events[0].Attributes[0].Value.AsString())

	assert.Equal(t, codes.Error, spans[1].Status.Code)
}

func TestCatalogOptionsIgnoreNil(t *testing.T) {
	c := NewCatalog(WithMetrics(nil), WithSpans(nil))
	assert.IsType(t, observability.NoopMetrics{}, c.metrics)
	assert.IsType(t, observability.NoopSpanManager{}, c.spans)
}

func TestCatalogConcurrentUse(t *testing.T) {
	c := DefaultCatalog(WithLogger(nil))
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			v := VariantA
			if n%2 == 1 {
				v = VariantB
			}
			p, err := c.Produce(ctx, v)
			assert.NoError(t, err)
			assert.Equal(t, v, p.Variant())
		}(i)
		go func(n int) {
			defer wg.Done()
			_ = c.Register(Variant(string(rune('C'+n%20))), CreatorA{})
			_ = c.Variants()
		}(i)
	}
	wg.Wait()

	assert.Len(t, c.Variants(), 22)
}
