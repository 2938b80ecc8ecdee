package matches

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"matchday/internal/shared/constants"
)

type stubRepository struct {
	matchList []Match
	byID      map[int64]Match
}

func (s *stubRepository) GetAll(ctx context.Context) ([]Match, error) {
	return s.matchList, nil
}

func (s *stubRepository) GetByID(ctx context.Context, matchID int64) (*Match, error) {
	match, ok := s.byID[matchID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &match, nil
}

func (s *stubRepository) Create(ctx context.Context, match *Match) error { return nil }

// passthroughCache always misses and serves straight from the fetcher.
type passthroughCache struct{}

func (passthroughCache) Get(ctx context.Context, key string, dest interface{}) error { return nil }
func (passthroughCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (passthroughCache) Delete(ctx context.Context, key string) error { return nil }
func (passthroughCache) Ping(ctx context.Context) error               { return nil }

func (passthroughCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	data, err := fetcher()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// recordingCache notes the TTL each GetOrSet was asked to cache under.
type recordingCache struct {
	passthroughCache
	lastTTL time.Duration
}

func (r *recordingCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	r.lastTTL = ttl
	return r.passthroughCache.GetOrSet(ctx, key, ttl, fetcher, dest)
}

func TestList_FormatsDates(t *testing.T) {
	repo := &stubRepository{matchList: []Match{{
		MatchID:   1,
		MatchDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		MatchTime: "19:30",
		MatchName: "Mumbai Mavericks vs Kolkata Knights",
		StadiumID: 3,
	}}}
	service := NewService(repo, passthroughCache{}, 0)

	result, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, MatchResponse{
		MatchID:   1,
		MatchDate: "2026-09-12",
		MatchTime: "19:30",
		MatchName: "Mumbai Mavericks vs Kolkata Knights",
		StadiumID: 3,
	}, result[0])
}

func TestList_EmptyCatalog(t *testing.T) {
	service := NewService(&stubRepository{}, passthroughCache{}, 0)

	_, err := service.List(context.Background())

	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestList_CachesUnderConfiguredTTL(t *testing.T) {
	repo := &stubRepository{matchList: []Match{{MatchID: 1}}}
	recorder := &recordingCache{}
	service := NewService(repo, recorder, 5*time.Minute)

	_, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, recorder.lastTTL)
}

func TestList_DefaultsTTLWhenUnset(t *testing.T) {
	repo := &stubRepository{matchList: []Match{{MatchID: 1}}}
	recorder := &recordingCache{}
	service := NewService(repo, recorder, 0)

	_, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, constants.TTL_MATCH_LIST, recorder.lastTTL)
}

func TestGetStadiumID(t *testing.T) {
	repo := &stubRepository{byID: map[int64]Match{
		1: {MatchID: 1, StadiumID: 3},
	}}
	service := NewService(repo, passthroughCache{}, 0)

	stadiumID, found, err := service.GetStadiumID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), stadiumID)

	_, found, err = service.GetStadiumID(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, found)
}
