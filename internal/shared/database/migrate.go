package database

import (
	"matchday/internal/bookings"
	"matchday/internal/matches"
	"matchday/internal/seats"
	"matchday/internal/stadiums"
	"matchday/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&stadiums.Stadium{},
		&matches.Match{},
		&seats.Seat{},
		&bookings.Booking{},
	); err != nil {
		return err
	}

	return MigrateConstraints(db)
}
