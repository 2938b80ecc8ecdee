package seats

import (
	"context"
	"errors"
)

// ErrMatchNotFound is returned when availability is requested for an
// unknown match id.
var ErrMatchNotFound = errors.New("match not found")

// MatchCatalog is the slice of the match service this package needs.
// Declared here to keep the dependency direction one way.
type MatchCatalog interface {
	GetStadiumID(ctx context.Context, matchID int64) (int64, bool, error)
}

type Service interface {
	// Availability lists the open seats of a match, ordered by stand
	// and seat number.
	Availability(ctx context.Context, matchID int64) ([]AvailabilityResponse, error)

	// GetStadiumIDs maps seat ids to stadiums for the booking engine's
	// request validation.
	GetStadiumIDs(ctx context.Context, seatIDs []int64) (map[int64]int64, error)
}

type service struct {
	repo    Repository
	matches MatchCatalog
}

func NewService(repo Repository, matchCatalog MatchCatalog) Service {
	return &service{
		repo:    repo,
		matches: matchCatalog,
	}
}

func (s *service) Availability(ctx context.Context, matchID int64) ([]AvailabilityResponse, error) {
	_, found, err := s.matches.GetStadiumID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMatchNotFound
	}

	seatRows, err := s.repo.AvailableForMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	// A sold out match yields an empty array, not an error.
	result := make([]AvailabilityResponse, 0, len(seatRows))
	for _, seat := range seatRows {
		result = append(result, AvailabilityResponse{
			SeatID:     seat.SeatID,
			StadiumID:  seat.StadiumID,
			MatchID:    matchID,
			StandName:  seat.StandName,
			SeatNumber: seat.SeatNumber,
		})
	}

	return result, nil
}

func (s *service) GetStadiumIDs(ctx context.Context, seatIDs []int64) (map[int64]int64, error) {
	if len(seatIDs) == 0 {
		return map[int64]int64{}, nil
	}
	return s.repo.GetStadiumIDs(ctx, seatIDs)
}
