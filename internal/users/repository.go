package users

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetRandom(ctx context.Context) (*User, error)
	Exists(ctx context.Context, userID int64) (bool, error)
	Create(ctx context.Context, user *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetRandom picks an arbitrary user. Ordering by random() is fine here; the
// user table is small and this path only backs the demo login endpoint.
func (r *repository) GetRandom(ctx context.Context) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Order("random()").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
