// Package kernel provides the value objects shared by every aggregate of the
// marketplace: identifiers, money and optional patch values.
//
// The package includes:
//   - UUID: surrogate identifier wrapping github.com/google/uuid
//   - Money: non-negative fixed-point amount backed by github.com/shopspring/decimal
//   - Optional: a presence-flagged value used by partial updates
//
// All values are immutable and safe for concurrent use.
package kernel
