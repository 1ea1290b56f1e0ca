// Package order provides the Order aggregate of the marketplace and the
// state machine that governs its delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding customer and restaurant references,
//     the total amount, the delivery address and the lifecycle timestamps
//   - Status: the closed set of lifecycle states and the legal-transition table
//   - TransitionPolicy: strict (table only) or permissive status changes
//   - Event: facts recorded by the aggregate for publication after commit
//   - Criteria: a storage-independent description of order queries
//
// Key business rules:
//   - New orders start as pending with a creation timestamp and no delivery timestamp
//   - The delivery timestamp is set the first time the order becomes delivered
//     and is never overwritten
//   - A delivered order cannot be cancelled; cancelling a cancelled order is a no-op
//   - Customer, restaurant and creation timestamp never change after creation
package order
