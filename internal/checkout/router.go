package checkout

import (
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes configures the checkout flow routes. All of them are
// scoped to the caller's browsing session.
func SetupCheckoutRoutes(rg *gin.RouterGroup, controller *Controller) {
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.RequireSession())
	{
		checkout.POST("/quote", controller.Quote)   // POST /api/v1/checkout/quote
		checkout.GET("", controller.Load)           // GET  /api/v1/checkout
		checkout.POST("/submit", controller.Submit) // POST /api/v1/checkout/submit
	}
}
