package showtimes

import "github.com/gin-gonic/gin"

// SetupShowtimeRoutes configures showtime read routes
func SetupShowtimeRoutes(rg *gin.RouterGroup, controller *Controller) {
	showtimes := rg.Group("/showtimes")
	{
		showtimes.GET("/:id", controller.GetShowtime) // GET /api/v1/showtimes/:id
	}
}
