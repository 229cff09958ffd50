// Package order provides domain entities and business logic for commercial
// order management. It implements the Order aggregate root with lifecycle
// management, owned line items, and derived total computation.
//
// The package includes:
//   - Order: The aggregate root that owns line items and manages the lifecycle
//   - LineItem: One product line (name, quantity, unit price) owned by an Order
//   - Status: A state machine that enforces valid lifecycle transitions
//   - CalculateTotal: The pure aggregation function for order totals
//
// Key business rules:
//   - Orders must have a valid unique identifier and customer email
//   - Order status follows a defined workflow: pending -> processing ->
//     completed, with cancellation allowed from pending and processing
//   - Completed and cancelled are terminal states
//   - The order total is always derived from line items with exact decimal
//     arithmetic; an order with no items has a total of zero
//   - Line items require a product name, a positive quantity, and a
//     non-negative unit price
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
