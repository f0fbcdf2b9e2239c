// Package kernel provides the domain primitives shared by the ordering model.
//
// The package includes:
//   - Calculable and Validatable: capability contracts implemented by items and orders
//   - ValidateProduct: the price/quantity rule every line item must satisfy
//
// Everything here is pure and stateless.
package kernel
