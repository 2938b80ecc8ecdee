package users

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNoUsers is returned when the user table is empty, which only happens
// before seed data has been loaded.
var ErrNoUsers = errors.New("no users available")

type Service interface {
	// Login picks an arbitrary user and hands back its id. There is no
	// credential check; authentication is out of scope for this service.
	Login(ctx context.Context) (*LoginResponse, error)

	// Exists reports whether a user id is valid. Used by the booking
	// engine to validate booking requests.
	Exists(ctx context.Context, userID int64) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context) (*LoginResponse, error) {
	user, err := s.repo.GetRandom(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUsers
		}
		return nil, err
	}

	return &LoginResponse{UserID: user.UserID}, nil
}

func (s *service) Exists(ctx context.Context, userID int64) (bool, error) {
	return s.repo.Exists(ctx, userID)
}
