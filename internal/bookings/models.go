package bookings

import "time"

// Booking is one row of the seat ledger: one seat of one match claimed
// under a booking reference. A multi-seat booking is several rows sharing
// the same BookingNumber. There is no status column; a row exists only if
// the booking committed, and cancellation is not supported.
//
// The composite primary key lets one reference span many seats. Double
// booking is prevented by a separate unique constraint on
// (match_id, seat_id) added in the constraints migration.
type Booking struct {
	BookingNumber string    `gorm:"primaryKey;column:booking_number;size:8" json:"booking_number"`
	MatchID       int64     `gorm:"primaryKey;column:match_id;autoIncrement:false" json:"match_id"`
	SeatID        int64     `gorm:"primaryKey;column:seat_id;autoIncrement:false" json:"seat_id"`
	UserID        int64     `gorm:"not null;index" json:"user_id"`
	CreatedOn     time.Time `gorm:"not null;autoCreateTime" json:"created_on"`
}

func (Booking) TableName() string {
	return "booking"
}
