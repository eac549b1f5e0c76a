package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/creational/pkg/creational/config"
	"github.com/randalmurphal/creational/pkg/creational/factory"
	"github.com/randalmurphal/creational/pkg/creational/observability"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool
	tracing    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "creational",
		Short: "Demonstrate the singleton and factory method patterns",
		Long: `creational runs small demonstrations of two creational patterns:
a process-wide singleton with shared state, and a factory method catalog
that builds interchangeable product variants.`,
		Version: version,
		// Errors are reported by us; usage is noise for runtime failures.
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate(`{{printf "creational version %s\n" .Version}}`)

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml or .json)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&opts.metrics, "metrics", false, "record OpenTelemetry metrics and log a summary on exit")
	pf.BoolVar(&opts.tracing, "tracing", false, "record OpenTelemetry spans and log them as they finish")

	cmd.AddCommand(
		newSingletonCmd(opts),
		newFactoryCmd(opts),
		newDemoCmd(opts),
	)
	return cmd
}

// session is the per-invocation state built from flags and config.
type session struct {
	cfg       config.Config
	logger    *slog.Logger
	providers *observability.Providers
}

// start loads configuration, applies flag overrides, and installs logging
// and telemetry.
func (o *rootOptions) start(cmd *cobra.Command) (*session, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.FromFile(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("metrics") {
		cfg.Telemetry.Metrics = o.metrics
	}
	if flags.Changed("tracing") {
		cfg.Telemetry.Tracing = o.tracing
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(cmd, cfg.Log)
	slog.SetDefault(logger)

	return &session{
		cfg:       cfg,
		logger:    logger,
		providers: observability.Install(logger, cfg.Telemetry.Metrics, cfg.Telemetry.Tracing),
	}, nil
}

func newLogger(cmd *cobra.Command, lc config.LogConfig) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: lc.SlogLevel()}
	if lc.JSON() {
		return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), handlerOpts))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), handlerOpts))
}

// catalog returns the default catalog wired to the session's telemetry.
func (s *session) catalog() *factory.Catalog {
	opts := []factory.Option{factory.WithLogger(s.logger)}
	if s.cfg.Telemetry.Metrics {
		opts = append(opts, factory.WithMetrics(observability.NewMetricsRecorder()))
	}
	if s.cfg.Telemetry.Tracing {
		opts = append(opts, factory.WithSpans(observability.NewSpanManager()))
	}
	return factory.DefaultCatalog(opts...)
}

// finish flushes telemetry. runErr takes precedence over shutdown errors.
func (s *session) finish(ctx context.Context, runErr error) error {
	if err := s.providers.Shutdown(ctx); err != nil {
		if runErr != nil {
			return runErr
		}
		return fmt.Errorf("telemetry shutdown: %w", err)
	}
	return runErr
}
