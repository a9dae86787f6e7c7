package models

import "time"

// Order statuses observed from the backend.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// OrderItem is an individual product line within an order.
type OrderItem struct {
	ID       string      `json:"id"`
	Quantity int         `json:"quantity"`
	Price    Money       `json:"price"`
	Product  CartProduct `json:"product"`
}

// Order is a placed order. Immutable from the storefront's perspective.
type Order struct {
	ID          string      `json:"id"`
	Total       Money       `json:"total"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Country     string      `json:"country"`
	PostalCode  string      `json:"postalCode"`
	PhoneNumber string      `json:"phoneNumber"`
	Items       []OrderItem `json:"items"`
}

// ShippingDetails returns the shipping block recorded with the order.
func (o *Order) ShippingDetails() ShippingDetails {
	return ShippingDetails{
		FirstName:   o.FirstName,
		LastName:    o.LastName,
		Email:       o.Email,
		Address:     o.Address,
		City:        o.City,
		Country:     o.Country,
		PostalCode:  o.PostalCode,
		PhoneNumber: o.PhoneNumber,
	}
}

// ShippingDetails is the transient checkout form entry. It only exists for
// the duration of checkout and is passed into order creation and the receipt.
type ShippingDetails struct {
	FirstName   string `json:"firstName" form:"firstName"`
	LastName    string `json:"lastName" form:"lastName"`
	Email       string `json:"email" form:"email"`
	Address     string `json:"address" form:"address"`
	City        string `json:"city" form:"city"`
	Country     string `json:"country" form:"country"`
	PostalCode  string `json:"postalCode" form:"postalCode"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
}

// Complete reports whether every shipping field has been filled in.
func (s ShippingDetails) Complete() bool {
	fields := []string{
		s.FirstName, s.LastName, s.Email, s.Address,
		s.City, s.Country, s.PostalCode, s.PhoneNumber,
	}
	for _, f := range fields {
		if f == "" {
			return false
		}
	}
	return true
}

// FullName joins the first and last name for display and receipts.
func (s ShippingDetails) FullName() string {
	return s.FirstName + " " + s.LastName
}

// CreateOrderItem is the line-item payload sent to the backend on checkout.
type CreateOrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrderRequest is the checkout submission payload.
type CreateOrderRequest struct {
	ShippingDetails ShippingDetails   `json:"shippingDetails"`
	Items           []CreateOrderItem `json:"items"`
	Total           float64           `json:"total"`
}
