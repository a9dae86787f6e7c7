// Package pricing holds the cart and order money arithmetic: normalizing
// the backend's mixed string/number price fields and reducing line items to
// subtotals and totals. Amounts accumulate unrounded; rounding happens only
// when an amount is formatted for display.
package pricing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sajid85/village-mart-customer-frontend/models"
)

// ShippingCost is the fixed shipping line. Shipping is free in every flow.
const ShippingCost = 0.0

// Normalize coerces a price that may arrive as a decimal string or a number
// into a float64. A malformed string comes back as NaN so the bad value
// stays visible instead of silently collapsing to zero.
func Normalize(price any) float64 {
	switch v := price.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case models.Money:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// LineTotal is the normalized unit price times the quantity.
func LineTotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}

// CartSubtotal sums the line totals over all cart items. Empty cart is 0.
func CartSubtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item.Product.Price.Float64(), item.Quantity)
	}
	return total
}

// OrderSubtotal sums the line totals over the items of a placed order,
// using the unit price captured at order time.
func OrderSubtotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item.Price.Float64(), item.Quantity)
	}
	return total
}

// OrderTotal is the cart subtotal plus the (free) shipping line.
func OrderTotal(items []models.CartItem) float64 {
	return CartSubtotal(items) + ShippingCost
}

// Format renders an amount with exactly two decimal places.
func Format(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
