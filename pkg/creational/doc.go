// Package creational runs the singleton and factory method demonstrations.
//
// The patterns themselves live in subpackages:
//   - singleton: the process-wide shared Instance and exactly-once helpers
//   - factory: Product/Creator interfaces, variants A and B, and Catalog
//
// This package holds the driver scenarios shared by the examples, the CLI,
// and the acceptance tests.
package creational
