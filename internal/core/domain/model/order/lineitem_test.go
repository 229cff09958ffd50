package order_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewLineItem(t *testing.T) {
	validID := kernel.NewUUID()
	validPrice := mustMoney(t, "10.00")

	t.Run("should create valid line item", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "Widget", 2, validPrice)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.Equal(t, "Widget", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.UnitPrice().IsEqual(validPrice))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewLineItem(invalidID, "Widget", 2, validPrice)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "", 2, validPrice)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, item)
	})

	t.Run("should fail with blank product name", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "   ", 2, validPrice)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "Widget", 0, validPrice)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "Widget", -3, validPrice)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "-3 is not greater than 0")
	})

	t.Run("should accept zero unit price", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "Freebie", 1, kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, item.Subtotal().IsZero())
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLineItem(invalidID, "", 0, validPrice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productName")
		assert.Contains(t, err.Error(), "quantity is invalid")
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	t.Run("should multiply exactly", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), "Widget", 3, mustMoney(t, "19.99"))

		require.NoError(t, err)
		assert.Equal(t, "59.97", item.Subtotal().String())
	})

	t.Run("quantity one returns unit price", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), "Gadget", 1, mustMoney(t, "5.00"))

		require.NoError(t, err)
		assert.Equal(t, "5.00", item.Subtotal().String())
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var item order.LineItem

		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})

	t.Run("nil pointer is invalid", func(t *testing.T) {
		var item *order.LineItem

		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}
