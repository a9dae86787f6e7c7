package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/pricing"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controller serves the checkout page and order placement.
type Controller struct {
	API      *services.BackendClient
	Flashes  *services.FlashService
	Receipts *services.ReceiptService
}

type summaryLine struct {
	models.CartItem
	TotalDisplay string
}

// ShowCheckout renders the shipping form next to the order summary. An
// empty cart has nothing to check out and goes back to the cart page.
func (ct *Controller) ShowCheckout(c *gin.Context) {
	sess := services.SessionFromContext(c)

	items, err := ct.API.GetCart(c.Request.Context(), sess.Token)
	if err != nil {
		log.Printf("[checkout] failed to fetch cart: %v", err)
		ct.Flashes.Error(c, "Failed to load cart items")
		c.Redirect(http.StatusFound, "/cart")
		return
	}
	if len(items) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	lines := make([]summaryLine, len(items))
	for i, item := range items {
		lines[i] = summaryLine{
			CartItem:     item,
			TotalDisplay: pricing.Format(pricing.LineTotal(item.Product.Price.Float64(), item.Quantity)),
		}
	}

	subtotal := pricing.CartSubtotal(items)
	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Title":    "Checkout",
		"Session":  sess,
		"Flashes":  ct.Flashes.Pop(c),
		"Lines":    lines,
		"Subtotal": pricing.Format(subtotal),
		"Total":    pricing.Format(subtotal + pricing.ShippingCost),
	})
}

// PlaceOrder creates the order at the backend and then renders the receipt
// PDF. The two steps are sequential and not transactional: a receipt
// failure after the order call succeeded leaves the order in place at the
// backend and reports a generic failure.
func (ct *Controller) PlaceOrder(c *gin.Context) {
	sess := services.SessionFromContext(c)
	ctx := c.Request.Context()

	var shipping models.ShippingDetails
	if err := c.ShouldBind(&shipping); err != nil || !shipping.Complete() {
		ct.Flashes.Error(c, "Please fill in all shipping details")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	items, err := ct.API.GetCart(ctx, sess.Token)
	if err != nil {
		log.Printf("[checkout] failed to fetch cart: %v", err)
		ct.Flashes.Error(c, "Failed to place order")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}
	if len(items) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	total := pricing.OrderTotal(items)
	req := models.CreateOrderRequest{
		ShippingDetails: shipping,
		Total:           total,
	}
	for _, item := range items {
		req.Items = append(req.Items, models.CreateOrderItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price.Float64(),
		})
	}

	order, err := ct.API.CreateOrder(ctx, sess.Token, req)
	if err != nil {
		log.Printf("[checkout] order creation failed: %v", err)
		ct.Flashes.Error(c, services.BackendMessage(err, "Failed to place order"))
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	receipt := services.BuildReceiptFromCart(order.ID, items, shipping, total)
	buf, err := ct.Receipts.GenerateReceiptPDF(receipt)
	if err != nil {
		// The order already exists at the backend at this point.
		log.Printf("[checkout] receipt generation failed for order %s: %v", order.ID, err)
		ct.Flashes.Error(c, "Failed to place order")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}
	ct.Receipts.Cache(ctx, order.ID, buf.Bytes())

	log.Printf("[checkout] order %s placed, total $%s", order.ID, pricing.Format(total))
	ct.Flashes.Success(c, "Order placed successfully!")
	c.Redirect(http.StatusFound, "/orders")
}
