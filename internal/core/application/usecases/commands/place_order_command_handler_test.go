package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	logger, logs := newTestLogger()
	cmd, _ := commands.NewPlaceOrderCommand(
		commands.NewItemLine("Notebook", 10, 2),
		commands.NewItemLine("Pen", 5, 3),
	)

	h := commands.NewPlaceOrderCommandHandler(logger)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, o)
	require.NoError(t, o.Validate())
	assert.InDelta(t, 35.0, o.Total(), 1e-9)

	items := o.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Notebook", items[0].Name())
	assert.Equal(t, "Pen", items[1].Name())

	assert.Contains(t, logs.String(), "Order placed")
	assert.Contains(t, logs.String(), "component=place_order_command_handler")
	assert.Contains(t, logs.String(), "total=35")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewPlaceOrderCommandHandler(nil)

	o, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	assert.Nil(t, o)
}

func TestPlaceOrderCommandHandler_Handle_InvalidLines(t *testing.T) {
	logger, logs := newTestLogger()
	cmd, _ := commands.NewPlaceOrderCommand(
		commands.NewItemLine("ok", 1, 1),
		commands.NewItemLine("bad price", -1, 1),
		commands.NewItemLine("bad quantity", 1, 0),
	)

	h := commands.NewPlaceOrderCommandHandler(logger)
	o, err := h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.Nil(t, o)
	require.ErrorIs(t, err, kernel.ErrPriceIsNegative)
	require.ErrorIs(t, err, kernel.ErrQuantityIsNotPositive)
	assert.Contains(t, err.Error(), `line 1 ("bad price")`)
	assert.Contains(t, err.Error(), `line 2 ("bad quantity")`)
	assert.NotContains(t, err.Error(), "line 0")
	assert.Contains(t, logs.String(), "Order rejected")
	assert.Contains(t, logs.String(), "invalid_lines=2")
}

func TestPlaceOrderCommandHandler_Handle_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	cmd, _ := commands.NewPlaceOrderCommand(commands.NewItemLine("Pen", 1, 1))

	h := commands.NewPlaceOrderCommandHandler(nil)
	o, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, o)
}
