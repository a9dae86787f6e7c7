package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/pricing"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controller serves the public product catalog page.
type Controller struct {
	API     *services.BackendClient
	Flashes *services.FlashService
}

// ProductView is a Product shaped for the template: resolved image and
// display-formatted prices.
type ProductView struct {
	models.Product
	Image           string
	PriceDisplay    string
	OldPriceDisplay string
}

// Products fetches the whole catalog once and filters it in memory from the
// query string. There is no server-side pagination; the backend list is the
// working set.
func (ct *Controller) Products(c *gin.Context) {
	products, err := ct.API.GetProducts(c.Request.Context())
	if err != nil {
		log.Printf("[products] failed to fetch catalog: %v", err)
		ct.Flashes.Error(c, "Failed to load products")
	}

	filter := parseFilter(c)
	filtered := models.FilterProducts(products, filter)

	views := make([]ProductView, len(filtered))
	for i, p := range filtered {
		view := ProductView{
			Product:      p,
			Image:        p.ImageURL,
			PriceDisplay: pricing.Format(p.Price.Float64()),
		}
		if !usableImageURL(p.ImageURL) {
			view.Image = PlaceholderImage(p.Category)
		}
		if p.OldPrice != nil {
			view.OldPriceDisplay = pricing.Format(p.OldPrice.Float64())
		}
		views[i] = view
	}

	c.HTML(http.StatusOK, "products.html", gin.H{
		"Title":      "Our Products",
		"Session":    services.SessionFromContext(c),
		"Flashes":    ct.Flashes.Pop(c),
		"Products":   views,
		"Categories": models.CategoryOptions(products),
		"Filter":     filter,
		"MinPrice":   c.Query("minPrice"),
		"MaxPrice":   c.Query("maxPrice"),
	})
}

func parseFilter(c *gin.Context) models.ProductFilter {
	filter := models.ProductFilter{
		Query:    c.Query("q"),
		Category: c.DefaultQuery("category", models.CategoryAll),
		Stock:    models.StockFilter(c.DefaultQuery("stock", string(models.StockAll))),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	switch filter.Stock {
	case models.StockAll, models.StockIn, models.StockOut:
	default:
		filter.Stock = models.StockAll
	}
	return filter
}
