// Package services provides domain services that work over collections of
// aggregates rather than a single one.
//
// The package includes:
//   - SalesCalculator: read-model folds over orders used by the reporting queries
package services
