package cmd

import (
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	logger *slog.Logger
}

func NewCompositionRoot(_ Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		logger: logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler()
}
