package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"ordering/cmd"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()
	config := cmd.LoadConfig(os.Getenv)

	logger, err := config.NewLogger(os.Stdout)
	if err != nil {
		log.Fatalf("Error configuring logger: %v", err)
	}

	app := cmd.NewCompositionRoot(config, logger)
	if err = placeSampleOrder(context.Background(), app); err != nil {
		log.Fatalf("Error placing sample order: %v", err)
	}
}

func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func placeSampleOrder(ctx context.Context, app cmd.CompositionRoot) error {
	placeCmd, err := commands.NewPlaceOrderCommand(
		commands.NewItemLine("Notebook", 10, 2),
		commands.NewItemLine("Pen", 5, 3),
	)
	if err != nil {
		return err
	}

	placeHandler := app.CreatePlaceOrderCommandHandler()
	o, err := placeHandler.Handle(ctx, placeCmd)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderSummaryQuery(o)
	if err != nil {
		return err
	}
	summary, err := app.CreateGetOrderSummaryQueryHandler().Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, line := range summary.Lines {
		log.Infof("%-10s %8.2f x %-3d = %8.2f", line.Name, line.UnitPrice, line.Quantity, line.Subtotal)
	}
	log.Infof("%d items, total %.2f", summary.ItemCount, summary.Total)
	return nil
}
