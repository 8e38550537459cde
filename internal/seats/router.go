package seats

import "github.com/gin-gonic/gin"

// SetupSeatRoutes configures seat map routes
func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller) {
	showtimes := rg.Group("/showtimes")
	{
		showtimes.GET("/:id/seats", controller.GetSeatMap) // GET /api/v1/showtimes/:id/seats
	}
}
