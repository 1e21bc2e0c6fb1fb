// Package ports defines the interfaces that connect the application layer to
// the reader and printer implementations.
//
// # Port Interfaces
//
//   - [TableReader]: loads a mapping file into a table
//   - [SummaryPrinter]: renders views of a loaded table
//
// The application layer (internal/app) depends only on these interfaces, so
// its control flow can be tested with fakes.
package ports
