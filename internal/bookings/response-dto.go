package bookings

import "time"

// BookingReceipt is the 201 body of POST /book_seats/. One receipt covers
// every seat committed under the booking number.
type BookingReceipt struct {
	BookingNumber string    `json:"booking_number"`
	MatchID       int64     `json:"match_id"`
	SeatIDs       []int64   `json:"seat_ids"`
	UserID        int64     `json:"user_id"`
	CreatedOn     time.Time `json:"created_on"`
}

// HistoryRow is one row of GET /get_bookings: a booked seat joined with
// its match, stadium and seat details, denormalized the way a ticket
// printout would show them.
type HistoryRow struct {
	BookingNumber    string    `json:"booking_number"`
	MatchID          int64     `json:"match_id"`
	MatchName        string    `json:"match_name"`
	MatchDate        string    `json:"match_date"`
	MatchTime        string    `json:"match_time"`
	StadiumName      string    `json:"stadium_name"`
	StandName        string    `json:"stand_name"`
	SeatNumber       string    `json:"seat_number"`
	BookingCreatedOn time.Time `json:"booking_created_on"`
}
