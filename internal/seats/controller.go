package seats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matchday/internal/shared/utils/response"
	"matchday/pkg/logger"
)

type Controller interface {
	GetAvailability(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetAvailability handles GET /availability/:match_id.
func (ctrl *controller) GetAvailability(c *gin.Context) {
	matchID, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "Invalid match ID")
		return
	}

	availability, err := ctrl.service.Availability(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			response.Detail(c, http.StatusNotFound, "Match not found!")
			return
		}
		logger.GetDefault().WithError(err).Error("availability lookup failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, availability)
}
