package seats

import (
	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/availability/:match_id", controller.GetAvailability) // GET /availability/:match_id - open seats for a match
}
