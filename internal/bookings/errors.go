package bookings

import "errors"

var (
	// ErrSeatConflict means at least one requested seat was already booked
	// for the match when the transaction tried to commit.
	ErrSeatConflict = errors.New("seat already booked for this match")

	// ErrReferenceConflict means the generated booking number collided
	// with an existing one. Callers retry with a fresh reference.
	ErrReferenceConflict = errors.New("booking reference already in use")

	ErrMatchNotFound      = errors.New("match not found")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrSeatOutsideStadium = errors.New("seat does not belong to the match's stadium")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptySeatSet       = errors.New("no seats requested")
)
