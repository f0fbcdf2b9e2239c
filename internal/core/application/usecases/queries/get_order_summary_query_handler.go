package queries

import (
	"context"
)

// GetOrderSummaryQueryHandler projects an order into a GetOrderSummaryQueryResponse.
type GetOrderSummaryQueryHandler struct{}

func NewGetOrderSummaryQueryHandler() GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{}
}

// Handle returns the summary of the order held by query.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	items := query.order.Items()
	lines := make([]LineSummary, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineSummary{
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal(),
		})
	}

	return GetOrderSummaryQueryResponse{
		Lines:     lines,
		ItemCount: len(lines),
		Total:     query.order.Total(),
	}, nil
}
