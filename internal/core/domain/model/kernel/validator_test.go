package kernel_test

import (
	"math"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProduct(t *testing.T) {
	t.Run("should accept valid price and quantity", func(t *testing.T) {
		cases := []struct {
			price    float64
			quantity int
		}{
			{0, 1},
			{10, 2},
			{0.01, 1},
			{99999.99, math.MaxInt32},
		}

		for _, c := range cases {
			require.NoError(t, kernel.ValidateProduct(c.price, c.quantity))
		}
	})

	t.Run("should reject negative price only", func(t *testing.T) {
		err := kernel.ValidateProduct(-0.5, 3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		require.ErrorIs(t, err, kernel.ErrPriceIsNegative)
		assert.NotErrorIs(t, err, kernel.ErrQuantityIsNotPositive)
		assert.Contains(t, err.Error(), "price")
		assert.NotContains(t, err.Error(), "quantity")
	})

	t.Run("should reject zero quantity only", func(t *testing.T) {
		err := kernel.ValidateProduct(5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrQuantityIsNotPositive)
		assert.NotErrorIs(t, err, kernel.ErrPriceIsNegative)
		assert.Contains(t, err.Error(), "quantity")
		assert.NotContains(t, err.Error(), "price")
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		err := kernel.ValidateProduct(5, -4)

		require.ErrorIs(t, err, kernel.ErrQuantityIsNotPositive)
		assert.Contains(t, err.Error(), "got -4")
	})

	t.Run("should combine both violations", func(t *testing.T) {
		err := kernel.ValidateProduct(-1, 0)

		require.ErrorIs(t, err, kernel.ErrPriceIsNegative)
		require.ErrorIs(t, err, kernel.ErrQuantityIsNotPositive)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Violations, 2)

		var first *errs.ValueIsInvalidError
		require.ErrorAs(t, validationErr.Violations[0], &first)
		assert.Equal(t, kernel.PriceParam, first.ParamName)

		var second *errs.ValueIsInvalidError
		require.ErrorAs(t, validationErr.Violations[1], &second)
		assert.Equal(t, kernel.QuantityParam, second.ParamName)
	})

	t.Run("should reject NaN price", func(t *testing.T) {
		err := kernel.ValidateProduct(math.NaN(), 1)

		require.ErrorIs(t, err, kernel.ErrPriceIsNegative)
	})

	t.Run("should return untyped nil on success", func(t *testing.T) {
		err := kernel.ValidateProduct(1, 1)

		assert.True(t, err == nil)
	})
}
