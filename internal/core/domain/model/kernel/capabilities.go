package kernel

// Calculable is implemented by anything that produces a monetary amount:
// an item yields its subtotal, an order its total.
type Calculable interface {
	Calculate() float64
}

// Validatable is implemented by domain objects that can check their own
// invariants.
type Validatable interface {
	Validate() error
}
