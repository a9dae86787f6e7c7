package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/redis/go-redis/v9"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/pricing"
)

// ReceiptItem is one resolved line of the receipt document.
type ReceiptItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// ReceiptData is the assembled receipt document payload: order identity,
// shipping block, resolved line items and totals.
type ReceiptData struct {
	OrderID  string
	PlacedAt time.Time
	Shipping models.ShippingDetails
	Items    []ReceiptItem
	Subtotal float64
	Total    float64
}

// receiptCacheTTL keeps a freshly generated checkout receipt around long
// enough for the follow-up download without regenerating it.
const receiptCacheTTL = 30 * time.Minute

// ReceiptService assembles order receipts and renders them to PDF.
type ReceiptService struct {
	rdb *redis.Client
}

func NewReceiptService(rdb *redis.Client) *ReceiptService {
	return &ReceiptService{rdb: rdb}
}

// BuildReceipt shapes a placed order into the receipt document payload.
func BuildReceipt(order *models.Order) ReceiptData {
	items := make([]ReceiptItem, len(order.Items))
	for i, item := range order.Items {
		unit := item.Price.Float64()
		items[i] = ReceiptItem{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			Total:     pricing.LineTotal(unit, item.Quantity),
		}
	}
	return ReceiptData{
		OrderID:  order.ID,
		PlacedAt: order.CreatedAt,
		Shipping: order.ShippingDetails(),
		Items:    items,
		Subtotal: pricing.OrderSubtotal(order.Items),
		Total:    order.Total.Float64(),
	}
}

// BuildReceiptFromCart shapes the just-checked-out cart into the receipt
// payload, before the order has been refetched from the backend.
func BuildReceiptFromCart(orderID string, cart []models.CartItem, shipping models.ShippingDetails, total float64) ReceiptData {
	items := make([]ReceiptItem, len(cart))
	for i, item := range cart {
		unit := item.Product.Price.Float64()
		items[i] = ReceiptItem{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			Total:     pricing.LineTotal(unit, item.Quantity),
		}
	}
	return ReceiptData{
		OrderID:  orderID,
		PlacedAt: time.Now(),
		Shipping: shipping,
		Items:    items,
		Subtotal: pricing.CartSubtotal(cart),
		Total:    total,
	}
}

// Cache stores a rendered receipt so the download right after checkout is
// served without a second render.
func (r *ReceiptService) Cache(ctx context.Context, orderID string, pdfBytes []byte) {
	key := "receipt:" + orderID
	if err := r.rdb.Set(ctx, key, pdfBytes, receiptCacheTTL).Err(); err != nil {
		log.Printf("[receipt] failed to cache receipt for order %s: %v", orderID, err)
	}
}

// Cached returns a previously rendered receipt, if still present.
func (r *ReceiptService) Cached(ctx context.Context, orderID string) ([]byte, bool) {
	raw, err := r.rdb.Get(ctx, "receipt:"+orderID).Bytes()
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

// GenerateReceiptPDF renders the receipt document to an in-memory PDF.
func (r *ReceiptService) GenerateReceiptPDF(data ReceiptData) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}
	green := color.Color{Red: 22, Green: 101, Blue: 52}

	// Receipt title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORDER RECEIPT", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Store header
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("VILLAGE MART", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: green,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("support@villagemart.shop", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Ship-to and order details
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("SHIP TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("ORDER DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(data.Shipping.FullName(), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Order #%s", data.OrderID), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(data.Shipping.Address, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", data.PlacedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("%s, %s %s", data.Shipping.City, data.Shipping.Country, data.Shipping.PostalCode), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(data.Shipping.Email, props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(data.Shipping.PhoneNumber, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Items table header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Item", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, item := range data.Items {
		item := item
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text("$"+pricing.Format(item.UnitPrice), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text("$"+pricing.Format(item.Total), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Summary
	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Subtotal", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("$"+pricing.Format(data.Subtotal), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Shipping", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Free", props.Text{
				Size:  9,
				Color: green,
				Align: consts.Right,
			})
		})
	})
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("$"+pricing.Format(data.Total), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: green,
				Align: consts.Right,
			})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for shopping with Village Mart!", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt PDF: %w", err)
	}
	return &buf, nil
}
