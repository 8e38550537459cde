package promotions

import "github.com/gin-gonic/gin"

// SetupPromotionRoutes configures promotion validation routes
func SetupPromotionRoutes(rg *gin.RouterGroup, controller *Controller) {
	promotions := rg.Group("/promotions")
	{
		promotions.POST("/check", controller.CheckCoupon) // POST /api/v1/promotions/check
	}
}
