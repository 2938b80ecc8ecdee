package seats

// Seat is one physical seat in a stadium. The (stadium, stand, number)
// triple is what a spectator reads off a printed ticket; seat_id is the
// surrogate key everything else references. Seat numbers are labels, not
// quantities, and stay strings on the wire.
type Seat struct {
	SeatID     int64  `gorm:"primaryKey;column:seat_id" json:"seat_id"`
	StadiumID  int64  `gorm:"not null;uniqueIndex:uq_seating_position,priority:1" json:"stadium_id"`
	StandName  string `gorm:"not null;size:100;uniqueIndex:uq_seating_position,priority:2" json:"stand_name"`
	SeatNumber string `gorm:"not null;size:20;uniqueIndex:uq_seating_position,priority:3" json:"seat_number"`
}

func (Seat) TableName() string {
	return "seating"
}
