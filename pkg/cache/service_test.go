package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Name string `json:"name"`
}

func TestGet_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	service := NewService(db)

	mock.ExpectGet("k").SetVal(`{"name":"wankhede"}`)

	var got cachedValue
	err := service.Get(context.Background(), "k", &got)

	require.NoError(t, err)
	assert.Equal(t, "wankhede", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_MissIsSentinel(t *testing.T) {
	db, mock := redismock.NewClientMock()
	service := NewService(db)

	mock.ExpectGet("k").RedisNil()

	var got cachedValue
	err := service.Get(context.Background(), "k", &got)

	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestGetOrSet_HitSkipsFetcher(t *testing.T) {
	db, mock := redismock.NewClientMock()
	service := NewService(db)

	mock.ExpectGet("k").SetVal(`{"name":"eden"}`)

	var got cachedValue
	err := service.GetOrSet(context.Background(), "k", time.Minute,
		func() (interface{}, error) {
			t.Fatal("fetcher must not run on a cache hit")
			return nil, nil
		}, &got)

	require.NoError(t, err)
	assert.Equal(t, "eden", got.Name)
}

func TestGetOrSet_FetchesOnMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	service := NewService(db)

	mock.ExpectGet("k").RedisNil()

	var got cachedValue
	err := service.GetOrSet(context.Background(), "k", time.Minute,
		func() (interface{}, error) {
			return cachedValue{Name: "chinnaswamy"}, nil
		}, &got)

	require.NoError(t, err)
	assert.Equal(t, "chinnaswamy", got.Name)
}

// Redis being down must not fail the read path; the fetcher serves the
// request directly.
func TestGetOrSet_FallsThroughWhenCacheDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	service := NewService(db)

	mock.ExpectGet("k").SetErr(errors.New("connection refused"))

	var got cachedValue
	err := service.GetOrSet(context.Background(), "k", time.Minute,
		func() (interface{}, error) {
			return cachedValue{Name: "wankhede"}, nil
		}, &got)

	require.NoError(t, err)
	assert.Equal(t, "wankhede", got.Name)
}

func TestGetOrSet_FetcherErrorPropagates(t *testing.T) {
	db, mock := redismock.NewClientMock()
	service := NewService(db)

	mock.ExpectGet("k").RedisNil()

	var got cachedValue
	err := service.GetOrSet(context.Background(), "k", time.Minute,
		func() (interface{}, error) {
			return nil, errors.New("catalog query failed")
		}, &got)

	assert.Error(t, err)
}
