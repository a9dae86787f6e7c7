package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sajid85/village-mart-customer-frontend/models"
)

func cartItem(id string, price models.Money, qty int) models.CartItem {
	return models.CartItem{
		ID:       id,
		Quantity: qty,
		Product:  models.CartProduct{ID: "p-" + id, Name: "item " + id, Price: price},
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 19.99, Normalize(19.99))
	assert.Equal(t, 19.99, Normalize("19.99"))
	assert.Equal(t, 3.0, Normalize(3))
	assert.Equal(t, 2.5, Normalize(models.Money(2.5)))

	assert.True(t, math.IsNaN(Normalize("not-a-price")))
	assert.True(t, math.IsNaN(Normalize(nil)))
}

func TestLineTotalStringPrice(t *testing.T) {
	// "19.99" x 3 displays as 59.97
	total := LineTotal(Normalize("19.99"), 3)
	assert.Equal(t, "59.97", Format(total))
}

func TestCartSubtotalEmpty(t *testing.T) {
	assert.Equal(t, "0.00", Format(CartSubtotal(nil)))
	assert.Equal(t, "0.00", Format(CartSubtotal([]models.CartItem{})))
}

func TestCartSubtotalSumsLineTotals(t *testing.T) {
	items := []models.CartItem{
		cartItem("1", 19.99, 3),
		cartItem("2", 2.50, 2),
		cartItem("3", 0.99, 1),
	}

	want := 19.99*3 + 2.50*2 + 0.99
	assert.InDelta(t, want, CartSubtotal(items), 1e-9)
	assert.Equal(t, "65.96", Format(CartSubtotal(items)))
}

func TestAccumulationRoundsOnlyAtDisplay(t *testing.T) {
	// Three lines of $0.335 each: rounding per line would give 1.02,
	// rounding once at the end gives 1.01.
	items := []models.CartItem{
		cartItem("1", 0.335, 1),
		cartItem("2", 0.335, 1),
		cartItem("3", 0.335, 1),
	}
	assert.Equal(t, "1.01", Format(CartSubtotal(items)))
}

func TestOrderTotalEqualsSubtotal(t *testing.T) {
	items := []models.CartItem{
		cartItem("1", 12.00, 2),
		cartItem("2", 4.25, 4),
	}

	// Shipping is a fixed free line.
	assert.Equal(t, CartSubtotal(items), OrderTotal(items))
}

func TestOrderSubtotalUsesCapturedPrice(t *testing.T) {
	items := []models.OrderItem{
		{ID: "1", Quantity: 2, Price: 5.00, Product: models.CartProduct{Price: 9.99}},
		{ID: "2", Quantity: 1, Price: 1.25},
	}

	// The unit price recorded on the order line wins over the product
	// snapshot's current price.
	assert.Equal(t, "11.25", Format(OrderSubtotal(items)))
}
