package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajid85/village-mart-customer-frontend/models"
)

func sampleShipping() models.ShippingDetails {
	return models.ShippingDetails{
		FirstName:   "Aysha",
		LastName:    "Rahman",
		Email:       "aysha@example.com",
		Address:     "12 Market Lane",
		City:        "Springfield",
		Country:     "USA",
		PostalCode:  "62704",
		PhoneNumber: "+1 555 0100",
	}
}

func TestBuildReceiptFromCart(t *testing.T) {
	cart := []models.CartItem{
		{ID: "c1", Quantity: 3, Product: models.CartProduct{Name: "Bananas", Price: 1.25}},
		{ID: "c2", Quantity: 1, Product: models.CartProduct{Name: "Milk", Price: 3.49}},
	}

	data := BuildReceiptFromCart("ord-42", cart, sampleShipping(), 7.24)

	assert.Equal(t, "ord-42", data.OrderID)
	require.Len(t, data.Items, 2)
	assert.Equal(t, "Bananas", data.Items[0].Name)
	assert.InDelta(t, 3.75, data.Items[0].Total, 1e-9)
	assert.InDelta(t, 7.24, data.Subtotal, 1e-9)
	assert.Equal(t, data.Subtotal, data.Total)
}

func TestBuildReceiptFromOrder(t *testing.T) {
	order := &models.Order{
		ID:        "ord-42",
		CreatedAt: time.Date(2026, 8, 14, 10, 0, 0, 0, time.UTC),
		FirstName: "Aysha",
		LastName:  "Rahman",
		Total:     7.24,
		Items: []models.OrderItem{
			{Quantity: 3, Price: 1.25, Product: models.CartProduct{Name: "Bananas"}},
			{Quantity: 1, Price: 3.49, Product: models.CartProduct{Name: "Milk"}},
		},
	}

	data := BuildReceipt(order)

	assert.Equal(t, "ord-42", data.OrderID)
	assert.Equal(t, "Aysha Rahman", data.Shipping.FullName())
	assert.InDelta(t, 7.24, data.Subtotal, 1e-9)
	assert.InDelta(t, 7.24, data.Total, 1e-9)
}

func TestGenerateReceiptPDF(t *testing.T) {
	svc := NewReceiptService(nil)
	data := BuildReceiptFromCart("ord-42", []models.CartItem{
		{ID: "c1", Quantity: 2, Product: models.CartProduct{Name: "Sourdough Loaf", Price: 5.50}},
	}, sampleShipping(), 11.00)

	buf, err := svc.GenerateReceiptPDF(data)

	require.NoError(t, err)
	require.NotNil(t, buf)
	out := buf.Bytes()
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
