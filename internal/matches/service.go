package matches

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"matchday/internal/shared/constants"
	"matchday/pkg/cache"
)

// ErrNoMatches is returned when no fixtures are scheduled.
var ErrNoMatches = errors.New("no matches scheduled")

type Service interface {
	// List returns every scheduled match. The listing is cached; matches
	// are seeded out of band and change rarely.
	List(ctx context.Context) ([]MatchResponse, error)

	// GetStadiumID resolves a match to its stadium. The second return
	// reports whether the match exists at all.
	GetStadiumID(ctx context.Context, matchID int64) (int64, bool, error)
}

type service struct {
	repo    Repository
	cache   cache.Service
	listTTL time.Duration
}

// NewService wires the match catalog. listTTL bounds how stale the cached
// listing may get; non-positive values fall back to the package default.
func NewService(repo Repository, cacheService cache.Service, listTTL time.Duration) Service {
	if listTTL <= 0 {
		listTTL = constants.TTL_MATCH_LIST
	}
	return &service{
		repo:    repo,
		cache:   cacheService,
		listTTL: listTTL,
	}
}

func (s *service) List(ctx context.Context) ([]MatchResponse, error) {
	var result []MatchResponse

	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_MATCH_LIST, s.listTTL,
		func() (interface{}, error) {
			matchList, err := s.repo.GetAll(ctx)
			if err != nil {
				return nil, err
			}

			responses := make([]MatchResponse, 0, len(matchList))
			for _, m := range matchList {
				responses = append(responses, toMatchResponse(m))
			}
			return responses, nil
		}, &result)
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, ErrNoMatches
	}

	return result, nil
}

func (s *service) GetStadiumID(ctx context.Context, matchID int64) (int64, bool, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return match.StadiumID, true, nil
}
