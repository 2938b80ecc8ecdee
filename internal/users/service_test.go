package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRepository struct {
	user   *User
	exists bool
}

func (s *stubRepository) GetRandom(ctx context.Context) (*User, error) {
	if s.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	return s.exists, nil
}

func (s *stubRepository) Create(ctx context.Context, user *User) error { return nil }

func TestLogin_ReturnsUserID(t *testing.T) {
	service := NewService(&stubRepository{user: &User{UserID: 7, Name: "Rohit Verma"}})

	result, err := service.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.UserID)
}

func TestLogin_NoUsers(t *testing.T) {
	service := NewService(&stubRepository{})

	_, err := service.Login(context.Background())

	assert.ErrorIs(t, err, ErrNoUsers)
}

func TestExists_PassesThrough(t *testing.T) {
	service := NewService(&stubRepository{exists: true})

	exists, err := service.Exists(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, exists)
}
