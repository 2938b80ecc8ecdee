package notifications

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// BookingConfirmation is the event published after a booking commits. It
// carries everything a downstream consumer (email, push, analytics) needs
// without calling back into the API.
type BookingConfirmation struct {
	ID            uuid.UUID `json:"id"`
	BookingNumber string    `json:"booking_number"`
	MatchID       int64     `json:"match_id"`
	UserID        int64     `json:"user_id"`
	SeatIDs       []int64   `json:"seat_ids"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBookingConfirmation(bookingNumber string, matchID, userID int64, seatIDs []int64) *BookingConfirmation {
	return &BookingConfirmation{
		ID:            uuid.New(),
		BookingNumber: bookingNumber,
		MatchID:       matchID,
		UserID:        userID,
		SeatIDs:       seatIDs,
		CreatedAt:     time.Now().UTC(),
	}
}

func (bc *BookingConfirmation) ToJSON() ([]byte, error) {
	return json.Marshal(bc)
}

// GetPartitionKey keys messages by match so all confirmations for one
// match land on the same partition, in order.
func (bc *BookingConfirmation) GetPartitionKey() string {
	return strconv.FormatInt(bc.MatchID, 10)
}
