package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/pricing"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controller serves order history, order details and receipt downloads.
type Controller struct {
	API      *services.BackendClient
	Flashes  *services.FlashService
	Receipts *services.ReceiptService
}

type orderView struct {
	models.Order
	TotalDisplay string
	DateDisplay  string
}

func newOrderView(o models.Order) orderView {
	return orderView{
		Order:        o,
		TotalDisplay: pricing.Format(o.Total.Float64()),
		DateDisplay:  o.CreatedAt.Format("January 2, 2006"),
	}
}

// Orders renders the order history list.
func (ct *Controller) Orders(c *gin.Context) {
	sess := services.SessionFromContext(c)

	orders, err := ct.API.GetOrders(c.Request.Context(), sess.Token)
	if err != nil {
		log.Printf("[orders] failed to fetch orders: %v", err)
		ct.Flashes.Error(c, "Failed to load orders")
	}

	views := make([]orderView, len(orders))
	for i, o := range orders {
		views[i] = newOrderView(o)
	}

	c.HTML(http.StatusOK, "orders.html", gin.H{
		"Title":   "My Orders",
		"Session": sess,
		"Flashes": ct.Flashes.Pop(c),
		"Orders":  views,
	})
}

type itemView struct {
	models.OrderItem
	UnitDisplay  string
	TotalDisplay string
}

// OrderDetails renders a single order with its line items and shipping
// block.
func (ct *Controller) OrderDetails(c *gin.Context) {
	sess := services.SessionFromContext(c)
	orderID := c.Param("id")

	order, err := ct.API.GetOrderDetails(c.Request.Context(), sess.Token, orderID)
	if err != nil {
		log.Printf("[orders] failed to fetch order %s: %v", orderID, err)
		ct.Flashes.Error(c, "Failed to load order details")
		c.Redirect(http.StatusFound, "/orders")
		return
	}

	items := make([]itemView, len(order.Items))
	for i, item := range order.Items {
		unit := item.Price.Float64()
		items[i] = itemView{
			OrderItem:    item,
			UnitDisplay:  pricing.Format(unit),
			TotalDisplay: pricing.Format(pricing.LineTotal(unit, item.Quantity)),
		}
	}

	c.HTML(http.StatusOK, "order_details.html", gin.H{
		"Title":    "Order details",
		"Session":  sess,
		"Flashes":  ct.Flashes.Pop(c),
		"Order":    newOrderView(*order),
		"Items":    items,
		"Subtotal": pricing.Format(pricing.OrderSubtotal(order.Items)),
	})
}

// DownloadReceipt streams the order's receipt PDF as an attachment,
// preferring the copy cached at checkout and regenerating from the order
// otherwise.
func (ct *Controller) DownloadReceipt(c *gin.Context) {
	sess := services.SessionFromContext(c)
	orderID := c.Param("id")
	ctx := c.Request.Context()

	pdfBytes, ok := ct.Receipts.Cached(ctx, orderID)
	if !ok {
		order, err := ct.API.GetOrderDetails(ctx, sess.Token, orderID)
		if err != nil {
			log.Printf("[orders.receipt] failed to fetch order %s: %v", orderID, err)
			ct.Flashes.Error(c, "Failed to generate receipt")
			c.Redirect(http.StatusFound, "/orders")
			return
		}

		buf, err := ct.Receipts.GenerateReceiptPDF(services.BuildReceipt(order))
		if err != nil {
			log.Printf("[orders.receipt] receipt generation failed for order %s: %v", orderID, err)
			ct.Flashes.Error(c, "Failed to generate receipt")
			c.Redirect(http.StatusFound, "/orders")
			return
		}
		pdfBytes = buf.Bytes()
	}

	filename := "receipt-" + orderID + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)

	log.Printf("[orders.receipt] receipt downloaded for order %s", orderID)
}
