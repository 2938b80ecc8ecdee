package matches

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (*Match, error)
	Create(ctx context.Context, match *Match) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Match, error) {
	var matchList []Match
	err := r.db.WithContext(ctx).Order("match_id").Find(&matchList).Error
	if err != nil {
		return nil, err
	}
	return matchList, nil
}

func (r *repository) GetByID(ctx context.Context, matchID int64) (*Match, error) {
	var match Match
	err := r.db.WithContext(ctx).First(&match, "match_id = ?", matchID).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *repository) Create(ctx context.Context, match *Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}
