package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler turns a PlaceOrderCommand into an order.Order.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(logger)
//	o, err := handler.Handle(ctx, cmd)
type PlaceOrderCommandHandler struct {
	logger *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler that logs through logger.
// A nil logger falls back to slog.Default().
func NewPlaceOrderCommandHandler(logger *slog.Logger) PlaceOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return PlaceOrderCommandHandler{
		logger: logger.With("component", "place_order_command_handler"),
	}
}

// Handle builds one item per line and adds them to a new order in the same
// order as the lines.
//
// Every line is validated before anything is added. If any line is invalid,
// Handle returns all line errors joined together, each prefixed with its
// zero-based index, and no order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	items := make([]*order.Item, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		item, err := order.NewItem(line.Name, line.UnitPrice, line.Quantity)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d (%q): %w", i, line.Name, err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(lineErrs...); err != nil {
		h.logger.WarnContext(ctx, "Order rejected", "lines", len(lines), "invalid_lines", len(lineErrs), "error", err)
		return nil, err
	}

	o := order.NewOrder()
	for _, item := range items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}

	h.logger.InfoContext(ctx, "Order placed", "items", o.Len(), "total", o.Total())
	return o, nil
}
