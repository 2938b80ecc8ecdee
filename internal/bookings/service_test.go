package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/pkg/logger"
)

type stubRepository struct {
	createErrs []error // consumed one per CreateAll call
	calls      [][]Booking
	history    []HistoryRow
	historyErr error
}

func (s *stubRepository) CreateAll(ctx context.Context, rows []Booking) error {
	s.calls = append(s.calls, rows)
	if len(s.createErrs) == 0 {
		return nil
	}
	err := s.createErrs[0]
	s.createErrs = s.createErrs[1:]
	return err
}

func (s *stubRepository) HistoryByUser(ctx context.Context, userID int64) ([]HistoryRow, error) {
	return s.history, s.historyErr
}

type stubMatchCatalog struct {
	stadiumID int64
	found     bool
	err       error
}

func (s *stubMatchCatalog) GetStadiumID(ctx context.Context, matchID int64) (int64, bool, error) {
	return s.stadiumID, s.found, s.err
}

type stubSeatCatalog struct {
	stadiums map[int64]int64
	err      error
}

func (s *stubSeatCatalog) GetStadiumIDs(ctx context.Context, seatIDs []int64) (map[int64]int64, error) {
	return s.stadiums, s.err
}

type stubUserCatalog struct {
	exists bool
	err    error
}

func (s *stubUserCatalog) Exists(ctx context.Context, userID int64) (bool, error) {
	return s.exists, s.err
}

type stubNotifier struct {
	confirmed chan string
}

func (s *stubNotifier) BookingConfirmed(ctx context.Context, bookingNumber string, matchID, userID int64, seatIDs []int64) error {
	s.confirmed <- bookingNumber
	return nil
}

func newTestService(repo *stubRepository, matchCatalog *stubMatchCatalog, seatCatalog *stubSeatCatalog, userCatalog *stubUserCatalog, notifier Notifier) Service {
	return NewService(repo, matchCatalog, seatCatalog, userCatalog, notifier, logger.GetDefault())
}

func validRequest() BookSeatsRequest {
	return BookSeatsRequest{MatchID: 1, SeatIDs: []int64{10, 11}, UserID: 7}
}

func TestBookSeats_Success(t *testing.T) {
	repo := &stubRepository{}
	notifier := &stubNotifier{confirmed: make(chan string, 1)}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3, 11: 3}},
		&stubUserCatalog{exists: true},
		notifier,
	)

	receipt, err := service.BookSeats(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Len(t, receipt.BookingNumber, 8)
	assert.Equal(t, int64(1), receipt.MatchID)
	assert.Equal(t, int64(7), receipt.UserID)
	assert.Equal(t, []int64{10, 11}, receipt.SeatIDs)
	assert.False(t, receipt.CreatedOn.IsZero())

	// One transaction, one row per seat, all under the same reference
	require.Len(t, repo.calls, 1)
	require.Len(t, repo.calls[0], 2)
	for _, row := range repo.calls[0] {
		assert.Equal(t, receipt.BookingNumber, row.BookingNumber)
		assert.Equal(t, receipt.CreatedOn, row.CreatedOn)
	}

	select {
	case published := <-notifier.confirmed:
		assert.Equal(t, receipt.BookingNumber, published)
	case <-time.After(time.Second):
		t.Fatal("expected a booking confirmation to be published")
	}
}

func TestBookSeats_DeduplicatesSeats(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3}},
		&stubUserCatalog{exists: true},
		nil,
	)

	receipt, err := service.BookSeats(context.Background(), BookSeatsRequest{
		MatchID: 1, SeatIDs: []int64{10, 10, 10}, UserID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, receipt.SeatIDs)
	require.Len(t, repo.calls, 1)
	assert.Len(t, repo.calls[0], 1)
}

func TestBookSeats_EmptySeatSet(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo, &stubMatchCatalog{}, &stubSeatCatalog{}, &stubUserCatalog{}, nil)

	_, err := service.BookSeats(context.Background(), BookSeatsRequest{MatchID: 1, SeatIDs: nil, UserID: 7})

	assert.ErrorIs(t, err, ErrEmptySeatSet)
	assert.Empty(t, repo.calls)
}

func TestBookSeats_UnknownMatch(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo,
		&stubMatchCatalog{found: false},
		&stubSeatCatalog{},
		&stubUserCatalog{exists: true},
		nil,
	)

	_, err := service.BookSeats(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrMatchNotFound)
	assert.Empty(t, repo.calls)
}

func TestBookSeats_UnknownUser(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3, 11: 3}},
		&stubUserCatalog{exists: false},
		nil,
	)

	_, err := service.BookSeats(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, repo.calls)
}

func TestBookSeats_UnknownSeat(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3}}, // seat 11 missing
		&stubUserCatalog{exists: true},
		nil,
	)

	_, err := service.BookSeats(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSeatNotFound)
	assert.Empty(t, repo.calls)
}

func TestBookSeats_SeatInDifferentStadium(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3, 11: 99}},
		&stubUserCatalog{exists: true},
		nil,
	)

	_, err := service.BookSeats(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSeatOutsideStadium)
	assert.Empty(t, repo.calls)
}

func TestBookSeats_SeatConflictNotRetried(t *testing.T) {
	repo := &stubRepository{createErrs: []error{ErrSeatConflict}}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3, 11: 3}},
		&stubUserCatalog{exists: true},
		nil,
	)

	_, err := service.BookSeats(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.Len(t, repo.calls, 1)
}

func TestBookSeats_RetriesOnReferenceCollision(t *testing.T) {
	repo := &stubRepository{createErrs: []error{ErrReferenceConflict, ErrReferenceConflict}}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3, 11: 3}},
		&stubUserCatalog{exists: true},
		nil,
	)

	receipt, err := service.BookSeats(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, repo.calls, 3)

	// Each attempt must carry a fresh reference
	assert.NotEqual(t, repo.calls[0][0].BookingNumber, repo.calls[1][0].BookingNumber)
	assert.Equal(t, repo.calls[2][0].BookingNumber, receipt.BookingNumber)
}

func TestBookSeats_GivesUpAfterMaxReferenceAttempts(t *testing.T) {
	errs := make([]error, maxReferenceAttempts)
	for i := range errs {
		errs[i] = ErrReferenceConflict
	}
	repo := &stubRepository{createErrs: errs}
	service := newTestService(repo,
		&stubMatchCatalog{stadiumID: 3, found: true},
		&stubSeatCatalog{stadiums: map[int64]int64{10: 3, 11: 3}},
		&stubUserCatalog{exists: true},
		nil,
	)

	_, err := service.BookSeats(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrReferenceConflict)
	assert.Len(t, repo.calls, maxReferenceAttempts)
}

func TestHistory_PassesThrough(t *testing.T) {
	repo := &stubRepository{history: []HistoryRow{{
		BookingNumber: "AB12CD34",
		MatchID:       1,
		MatchName:     "Mumbai Mavericks vs Kolkata Knights",
		MatchDate:     "2026-09-12",
		MatchTime:     "19:30",
		StadiumName:   "Wankhede Stadium",
		StandName:     "North Stand",
		SeatNumber:    "4",
	}}}
	service := newTestService(repo, &stubMatchCatalog{}, &stubSeatCatalog{}, &stubUserCatalog{}, nil)

	history, err := service.History(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "AB12CD34", history[0].BookingNumber)
	assert.Equal(t, "2026-09-12", history[0].MatchDate)
}
