package bookings

import (
	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/book_seats/", controller.BookSeats)   // POST /book_seats/ - atomically book a set of seats
	router.GET("/get_bookings", controller.GetBookings) // GET /get_bookings?user_id=N - booking history for a user
}
