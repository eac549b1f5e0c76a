package creational

import (
	"context"
	"fmt"
	"io"

	"github.com/randalmurphal/creational/pkg/creational/config"
	"github.com/randalmurphal/creational/pkg/creational/factory"
	"github.com/randalmurphal/creational/pkg/creational/singleton"
)

// printer remembers the first write error so callers check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// RunSingletonDemo shows that two handles share one instance: it prints both
// handle addresses, writes cfg.First through the first handle and reads it
// through the second, then writes cfg.Second through the second and reads it
// through the first.
func RunSingletonDemo(w io.Writer, cfg config.SingletonConfig) error {
	s1 := singleton.GetInstance()
	s2 := singleton.GetInstance()
	p := &printer{w: w}

	p.printf("s1 address: %p\n", s1)
	p.printf("s2 address: %p\n", s2)

	s1.SetValue(cfg.First)
	p.printf("set s1 num to %d\n", cfg.First)
	p.printf("s2 num: %d\n", s2.Value())

	s2.SetValue(cfg.Second)
	p.printf("set s2 num to %d\n", cfg.Second)
	p.printf("s1 num: %d\n", s1.Value())

	return p.err
}

// RunFactoryDemo produces one product per variant, in order, and prints what
// each product's Use returns.
func RunFactoryDemo(ctx context.Context, w io.Writer, catalog *factory.Catalog, variants []factory.Variant) error {
	p := &printer{w: w}
	for _, v := range variants {
		product, err := catalog.Produce(ctx, v)
		if err != nil {
			return fmt.Errorf("factory demo: %w", err)
		}
		p.printf("%s\n", product.Use())
	}
	return p.err
}

// ParseVariants normalizes variant names with factory.ParseVariant.
func ParseVariants(names []string) ([]factory.Variant, error) {
	variants := make([]factory.Variant, 0, len(names))
	for i, name := range names {
		v, err := factory.ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// Run executes both demos using cfg, the singleton demo first.
func Run(ctx context.Context, w io.Writer, cfg config.Config, catalog *factory.Catalog) error {
	if err := RunSingletonDemo(w, cfg.Singleton); err != nil {
		return fmt.Errorf("singleton demo: %w", err)
	}
	variants, err := ParseVariants(cfg.Factory.Variants)
	if err != nil {
		return err
	}
	return RunFactoryDemo(ctx, w, catalog, variants)
}
