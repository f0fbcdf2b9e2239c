// Package queries contains the read-side use cases of the ordering model.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery asks for a flat read model of an order: its lines with
// subtotals and the order total.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(o)
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, query)
//	fmt.Printf("%d items, total %.2f\n", summary.ItemCount, summary.Total)
type GetOrderSummaryQuery struct {
	order *order.Order

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for o. The order must have been
// created by order.NewOrder.
func NewGetOrderSummaryQuery(o *order.Order) (GetOrderSummaryQuery, error) {
	if err := o.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{order: o, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// LineSummary describes one order item.
type LineSummary struct {
	Name      string
	UnitPrice float64
	Quantity  int
	Subtotal  float64
}

// GetOrderSummaryQueryResponse is the read model of an order. Lines follow
// insertion order.
type GetOrderSummaryQueryResponse struct {
	Lines     []LineSummary
	ItemCount int
	Total     float64
}
