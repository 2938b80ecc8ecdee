package bookings

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyInsertError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "seat uniqueness violation is a seat conflict",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_booking_match_seat"},
			want: ErrSeatConflict,
		},
		{
			name: "primary key violation is a reference collision",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "booking_pkey"},
			want: ErrReferenceConflict,
		},
		{
			name: "match foreign key violation names the match",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "fk_booking_match"},
			want: ErrMatchNotFound,
		},
		{
			name: "seat foreign key violation names the seat",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "fk_booking_seat"},
			want: ErrSeatNotFound,
		},
		{
			name: "user foreign key violation names the user",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "fk_booking_user"},
			want: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyInsertError(tt.err), tt.want)
		})
	}
}

// gorm surfaces driver errors wrapped; classification must see through the
// wrapping.
func TestClassifyInsertError_WrappedPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_booking_match_seat"}
	wrapped := fmt.Errorf("create booking rows: %w", pgErr)

	assert.ErrorIs(t, classifyInsertError(wrapped), ErrSeatConflict)
}

func TestClassifyInsertError_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection reset by peer")
	assert.Equal(t, plain, classifyInsertError(plain))

	// Other SQLSTATEs are not the ledger's concern
	other := &pgconn.PgError{Code: "40001", ConstraintName: ""}
	assert.Equal(t, error(other), classifyInsertError(other))
}
