package order

import "orders/internal/core/domain/model/kernel"

// CalculateTotal computes the monetary total of a collection of line items:
// the sum of quantity × unit price across all items, using exact decimal
// arithmetic. An empty (or nil) collection yields zero.
//
// CalculateTotal is a pure function with no side effects. It assumes items
// have already passed entity validation and therefore has no failure modes.
func CalculateTotal(items []*LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
