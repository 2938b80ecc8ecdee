package bookings

// BookSeatsRequest is the body of POST /book_seats/.
type BookSeatsRequest struct {
	MatchID int64   `json:"match_id" binding:"required"`
	SeatIDs []int64 `json:"seat_ids" binding:"required,min=1"`
	UserID  int64   `json:"user_id" binding:"required"`
}
