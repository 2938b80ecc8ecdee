package matches

import (
	"github.com/gin-gonic/gin"
)

func SetupMatchRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/matches", controller.ListMatches) // GET /matches - list all scheduled matches
}
