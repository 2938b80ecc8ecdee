package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	seatConstraintName = "uq_booking_match_seat"

	fkMatchConstraintName = "fk_booking_match"
	fkUserConstraintName  = "fk_booking_user"
)

type Repository interface {
	// CreateAll inserts every row of a booking in one transaction. Either
	// all seats commit under the reference or none do.
	CreateAll(ctx context.Context, rows []Booking) error

	// HistoryByUser returns the user's booked seats joined with match,
	// stadium and seat details, newest booking first.
	HistoryByUser(ctx context.Context, userID int64) ([]HistoryRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateAll relies on the database for all concurrency control. Two
// transactions racing for the same seat both insert; the unique constraint
// on (match_id, seat_id) rejects whichever commits second, and that
// rejection rolls back the loser's entire seat set.
func (r *repository) CreateAll(ctx context.Context, rows []Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return classifyInsertError(err)
	}
	return nil
}

// classifyInsertError maps PostgreSQL constraint violations onto the
// package's sentinel errors so the service layer never sees driver types.
func classifyInsertError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == seatConstraintName {
			return ErrSeatConflict
		}
		// Any other unique violation on this insert is the primary key,
		// meaning the generated reference is taken.
		return ErrReferenceConflict
	case pgForeignKeyViolation:
		// Match, seat or user vanished between validation and commit.
		// The violated constraint names the entity.
		switch pgErr.ConstraintName {
		case fkMatchConstraintName:
			return fmt.Errorf("%w: %s", ErrMatchNotFound, pgErr.ConstraintName)
		case fkUserConstraintName:
			return fmt.Errorf("%w: %s", ErrUserNotFound, pgErr.ConstraintName)
		default:
			return fmt.Errorf("%w: %s", ErrSeatNotFound, pgErr.ConstraintName)
		}
	}

	return err
}

func (r *repository) HistoryByUser(ctx context.Context, userID int64) ([]HistoryRow, error) {
	var rows []struct {
		BookingNumber string
		MatchID       int64
		MatchName     string
		MatchDate     string
		MatchTime     string
		StadiumName   string
		StandName     string
		SeatNumber    string
		CreatedOn     time.Time
	}

	err := r.db.WithContext(ctx).
		Table("booking").
		Select(`booking.booking_number,
			booking.match_id,
			"match".match_name,
			to_char("match".match_date, 'YYYY-MM-DD') AS match_date,
			"match".match_time,
			stadium.name AS stadium_name,
			seating.stand_name,
			seating.seat_number,
			booking.created_on`).
		Joins(`JOIN "match" ON "match".match_id = booking.match_id`).
		Joins(`JOIN stadium ON stadium.stadium_id = "match".stadium_id`).
		Joins(`JOIN seating ON seating.seat_id = booking.seat_id`).
		Where("booking.user_id = ?", userID).
		Order("booking.created_on DESC, booking.booking_number, seating.stand_name, seating.seat_number").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]HistoryRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, HistoryRow{
			BookingNumber:    row.BookingNumber,
			MatchID:          row.MatchID,
			MatchName:        row.MatchName,
			MatchDate:        row.MatchDate,
			MatchTime:        row.MatchTime,
			StadiumName:      row.StadiumName,
			StandName:        row.StandName,
			SeatNumber:       row.SeatNumber,
			BookingCreatedOn: row.CreatedOn,
		})
	}

	return result, nil
}
