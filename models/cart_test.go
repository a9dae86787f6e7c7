package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCart() []CartItem {
	return []CartItem{
		{ID: "a", Quantity: 2, Product: CartProduct{ID: "p1", Name: "Apples", Price: 2.99}},
		{ID: "b", Quantity: 1, Product: CartProduct{ID: "p2", Name: "Bread", Price: 4.50}},
	}
}

func TestRemoveCartItem(t *testing.T) {
	got := RemoveCartItem(sampleCart(), "a")
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestRemoveCartItemAbsentIDIsNoOp(t *testing.T) {
	items := sampleCart()
	got := RemoveCartItem(items, "missing")
	assert.Equal(t, items, got)
}

func TestSetCartQuantity(t *testing.T) {
	items := sampleCart()
	got := SetCartQuantity(items, "b", 5)

	assert.Equal(t, 5, got[1].Quantity)
	// The input mirror is left untouched.
	assert.Equal(t, 1, items[1].Quantity)
}

func TestSetCartQuantityAbsentIDIsNoOp(t *testing.T) {
	items := sampleCart()
	assert.Equal(t, items, SetCartQuantity(items, "missing", 7))
}
