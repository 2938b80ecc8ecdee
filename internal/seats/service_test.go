package seats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	available    []Seat
	availableErr error
	stadiums     map[int64]int64
	calls        int
}

func (s *stubRepository) AvailableForMatch(ctx context.Context, matchID int64) ([]Seat, error) {
	return s.available, s.availableErr
}

func (s *stubRepository) GetStadiumIDs(ctx context.Context, seatIDs []int64) (map[int64]int64, error) {
	s.calls++
	return s.stadiums, nil
}

func (s *stubRepository) CreateBatch(ctx context.Context, rows []Seat) error { return nil }

type stubMatchCatalog struct {
	stadiumID int64
	found     bool
}

func (s *stubMatchCatalog) GetStadiumID(ctx context.Context, matchID int64) (int64, bool, error) {
	return s.stadiumID, s.found, nil
}

func TestAvailability_UnknownMatch(t *testing.T) {
	service := NewService(&stubRepository{}, &stubMatchCatalog{found: false})

	_, err := service.Availability(context.Background(), 42)

	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestAvailability_MapsSeats(t *testing.T) {
	repo := &stubRepository{available: []Seat{
		{SeatID: 10, StadiumID: 3, StandName: "North Stand", SeatNumber: "1"},
		{SeatID: 11, StadiumID: 3, StandName: "North Stand", SeatNumber: "2"},
	}}
	service := NewService(repo, &stubMatchCatalog{stadiumID: 3, found: true})

	availability, err := service.Availability(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, availability, 2)
	assert.Equal(t, AvailabilityResponse{
		SeatID:     10,
		StadiumID:  3,
		MatchID:    42,
		StandName:  "North Stand",
		SeatNumber: "1",
	}, availability[0])
}

func TestAvailability_SoldOutIsEmptyNotError(t *testing.T) {
	service := NewService(&stubRepository{}, &stubMatchCatalog{stadiumID: 3, found: true})

	availability, err := service.Availability(context.Background(), 42)

	require.NoError(t, err)
	assert.NotNil(t, availability)
	assert.Empty(t, availability)
}

func TestGetStadiumIDs_EmptyInputSkipsQuery(t *testing.T) {
	repo := &stubRepository{}
	service := NewService(repo, &stubMatchCatalog{})

	result, err := service.GetStadiumIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Zero(t, repo.calls)
}
