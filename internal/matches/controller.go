package matches

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchday/internal/shared/utils/response"
	"matchday/pkg/logger"
)

type Controller interface {
	ListMatches(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// ListMatches handles GET /matches. The body is a bare JSON array; clients
// of the original API depend on that shape.
func (ctrl *controller) ListMatches(c *gin.Context) {
	matchList, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoMatches) {
			response.Detail(c, http.StatusNotFound, "Matches not found!")
			return
		}
		logger.GetDefault().WithError(err).Error("match listing failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, matchList)
}
