// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: entity and aggregate identifiers
//   - Email: validated customer email addresses
//   - Money: exact-decimal, non-negative monetary amounts
//
// All kernel types are immutable value objects constructed through factory
// functions. Except for Money, whose zero value is a legal zero amount,
// zero values are invalid and rejected by Validate().
package kernel
