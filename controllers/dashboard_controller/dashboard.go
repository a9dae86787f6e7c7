package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/pricing"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

const recentOrderCount = 3

// Controller serves the signed-in dashboard.
type Controller struct {
	API     *services.BackendClient
	Flashes *services.FlashService
}

// Dashboard renders the greeting, the featured slice of the catalog and the
// most recent orders. The two backend reads are independent, so they run in
// parallel.
func (ct *Controller) Dashboard(c *gin.Context) {
	sess := services.SessionFromContext(c)

	var (
		products []models.Product
		orders   []models.Order
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		products, err = ct.API.GetProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = ct.API.GetOrders(ctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[dashboard] failed to load dashboard data: %v", err)
		ct.Flashes.Error(c, "Failed to load dashboard")
	}

	featured := models.Featured(products)
	recent := orders
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}

	type orderRow struct {
		models.Order
		TotalDisplay string
	}
	recentRows := make([]orderRow, len(recent))
	for i, o := range recent {
		recentRows[i] = orderRow{Order: o, TotalDisplay: pricing.Format(o.Total.Float64())}
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":    "Dashboard",
		"Session":  sess,
		"Flashes":  ct.Flashes.Pop(c),
		"Featured": featured,
		"Recent":   recentRows,
		"Query":    c.Query("q"),
	})
}
