package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchday/internal/shared/utils/response"
	"matchday/pkg/logger"
)

type Controller interface {
	Login(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// Login handles GET /login_user.
func (ctrl *controller) Login(c *gin.Context) {
	result, err := ctrl.service.Login(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoUsers) {
			response.Detail(c, http.StatusNotFound, "No users found!")
			return
		}
		logger.GetDefault().WithError(err).Error("login lookup failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, result)
}
