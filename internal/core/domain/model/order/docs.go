// Package order provides the Order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root owning line items, a frozen total, and the
//     mutable status with its cancellation metadata
//   - Status: the state machine validating every transition
//   - Item: an immutable line item priced at order time
//   - Actor and PaymentMethod: supporting value objects
//
// Key business rules:
//   - The forward path is strictly linear: under_review -> preparing ->
//     on_way -> arrived -> completed, with no skipping
//   - Operators may cancel directly from under_review or preparing
//   - Customers raise cancellation requests, which an operator approves or
//     rejects; rejection restores the status captured when the request was
//     raised
//   - completed and cancelled are terminal
//   - The total amount is computed once from the line items at creation and
//     never recomputed
package order
