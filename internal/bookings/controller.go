package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matchday/internal/shared/utils/response"
	"matchday/pkg/logger"
)

type Controller interface {
	BookSeats(c *gin.Context)
	GetBookings(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// BookSeats handles POST /book_seats/.
func (ctrl *controller) BookSeats(c *gin.Context) {
	var req BookSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := ctrl.service.BookSeats(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSeatConflict):
			response.Detail(c, http.StatusConflict, "One or more seats are already booked for this match")
		case errors.Is(err, ErrReferenceConflict):
			// Ran out of reference retries; the client can simply retry.
			response.Detail(c, http.StatusConflict, "Could not allocate a booking reference, please retry")
		case errors.Is(err, ErrMatchNotFound):
			response.Detail(c, http.StatusUnprocessableEntity, "Match not found!")
		case errors.Is(err, ErrSeatNotFound):
			response.Detail(c, http.StatusUnprocessableEntity, "One or more seats do not exist")
		case errors.Is(err, ErrSeatOutsideStadium):
			response.Detail(c, http.StatusUnprocessableEntity, "One or more seats do not belong to this match's stadium")
		case errors.Is(err, ErrUserNotFound):
			response.Detail(c, http.StatusUnprocessableEntity, "User not found!")
		case errors.Is(err, ErrEmptySeatSet):
			response.Detail(c, http.StatusBadRequest, "No seats requested")
		default:
			logger.GetDefault().WithError(err).Error("booking failed")
			response.Detail(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// GetBookings handles GET /get_bookings?user_id=N.
func (ctrl *controller) GetBookings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "Invalid user ID")
		return
	}

	history, err := ctrl.service.History(c.Request.Context(), userID)
	if err != nil {
		logger.GetDefault().WithError(err).Error("booking history lookup failed")
		response.Detail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, history)
}
