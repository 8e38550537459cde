package bookings

import "github.com/gin-gonic/gin"

// SetupBookingRoutes configures booking confirmation routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("/:ref", controller.GetBooking) // GET /api/v1/bookings/:ref
	}
}
