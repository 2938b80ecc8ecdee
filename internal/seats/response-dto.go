package seats

// AvailabilityResponse is one open seat in GET /availability/:match_id.
// match_id is echoed back so clients can book straight from the row.
type AvailabilityResponse struct {
	SeatID     int64  `json:"seat_id"`
	StadiumID  int64  `json:"stadium_id"`
	MatchID    int64  `json:"match_id"`
	StandName  string `json:"stand_name"`
	SeatNumber string `json:"seat_number"`
}
