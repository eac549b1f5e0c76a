/*
Package config loads settings for the demo drivers and the CLI.

# File Format

YAML and JSON are accepted, chosen by file extension:

	singleton:
	  first: 123
	  second: 456
	factory:
	  variants: [A, B]
	log:
	  level: debug
	  format: json
	telemetry:
	  metrics: true
	  tracing: false

Keys missing from the file keep the values from Default.

# Usage

	cfg, err := config.FromFile("creational.yaml")
	if err != nil {
	    return err
	}
	if err := cfg.Validate(); err != nil {
	    return err
	}
	level := cfg.Log.SlogLevel()

The core singleton and factory packages never read configuration; only the
drivers do.
*/
package config
