// Package order provides the Item entity and the Order aggregate.
//
// The package includes:
//   - Item: a named line with a unit price and quantity, validated on
//     construction and on every price or quantity change
//   - Order: an ordered sequence of items whose total is the sum of their subtotals
//
// Key business rules:
//   - Unit price must not be negative
//   - Quantity must be greater than zero
//   - Items keep insertion order; adding the same item twice counts it twice
//   - An empty order totals 0
package order
