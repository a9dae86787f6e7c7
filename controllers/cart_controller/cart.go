package cart_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/pricing"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controller serves the shopping cart page and its mutations.
type Controller struct {
	API     *services.BackendClient
	Flashes *services.FlashService
}

// LineView is a cart line shaped for the template.
type LineView struct {
	models.CartItem
	UnitDisplay  string
	TotalDisplay string
}

// ShowCart lists the cart with per-line totals and the order summary:
// subtotal, the free shipping line, and the order total (equal to the
// subtotal).
func (ct *Controller) ShowCart(c *gin.Context) {
	sess := services.SessionFromContext(c)

	items, err := ct.API.GetCart(c.Request.Context(), sess.Token)
	if err != nil {
		log.Printf("[cart] failed to fetch cart: %v", err)
		ct.Flashes.Error(c, "Failed to load cart items")
	}

	ct.renderCart(c, items)
}

// UpdateQuantity persists a quantity change and re-renders the cart from a
// locally updated mirror of the list.
func (ct *Controller) UpdateQuantity(c *gin.Context) {
	sess := services.SessionFromContext(c)
	itemID := c.Param("id")

	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || quantity < models.MinQuantity || quantity > models.MaxQuantity {
		ct.Flashes.Error(c, "Invalid quantity")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	if err := ct.API.UpdateCartQuantity(c.Request.Context(), sess.Token, itemID, quantity); err != nil {
		log.Printf("[cart] failed to update quantity for item %s: %v", itemID, err)
		ct.Flashes.Error(c, "Failed to update quantity")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	items, err := ct.API.GetCart(c.Request.Context(), sess.Token)
	if err != nil {
		log.Printf("[cart] refetch after quantity update failed: %v", err)
		ct.Flashes.Success(c, "Quantity updated")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	// The read can lag the write; apply the change to the local mirror.
	items = models.SetCartQuantity(items, itemID, quantity)

	ct.Flashes.Success(c, "Quantity updated")
	ct.renderCart(c, items)
}

// RemoveItem deletes a line and re-renders the cart with the line dropped
// from the local mirror. Removing an id the list no longer contains leaves
// it unchanged.
func (ct *Controller) RemoveItem(c *gin.Context) {
	sess := services.SessionFromContext(c)
	itemID := c.Param("id")

	if err := ct.API.RemoveFromCart(c.Request.Context(), sess.Token, itemID); err != nil {
		log.Printf("[cart] failed to remove item %s: %v", itemID, err)
		ct.Flashes.Error(c, "Failed to remove item")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	items, err := ct.API.GetCart(c.Request.Context(), sess.Token)
	if err != nil {
		log.Printf("[cart] refetch after remove failed: %v", err)
		ct.Flashes.Success(c, "Item removed from cart")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	items = models.RemoveCartItem(items, itemID)

	ct.Flashes.Success(c, "Item removed from cart")
	ct.renderCart(c, items)
}

func (ct *Controller) renderCart(c *gin.Context, items []models.CartItem) {
	lines := make([]LineView, len(items))
	for i, item := range items {
		unit := item.Product.Price.Float64()
		lines[i] = LineView{
			CartItem:     item,
			UnitDisplay:  pricing.Format(unit),
			TotalDisplay: pricing.Format(pricing.LineTotal(unit, item.Quantity)),
		}
	}

	subtotal := pricing.CartSubtotal(items)

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Title":      "Shopping Cart",
		"Session":    services.SessionFromContext(c),
		"Flashes":    ct.Flashes.Pop(c),
		"Lines":      lines,
		"Subtotal":   pricing.Format(subtotal),
		"Total":      pricing.Format(subtotal + pricing.ShippingCost),
		"Quantities": quantityOptions(),
	})
}

func quantityOptions() []int {
	opts := make([]int, 0, models.MaxQuantity)
	for q := models.MinQuantity; q <= models.MaxQuantity; q++ {
		opts = append(opts, q)
	}
	return opts
}
