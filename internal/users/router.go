package users

import (
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/login_user", controller.Login) // GET /login_user - demo login, returns an arbitrary user id
}
