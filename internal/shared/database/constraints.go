package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the database constraints the booking engine relies
// on for concurrency control. The composite primary key on booking alone
// still allows two references to claim the same seat; this unique constraint
// is the serialization point that rejects double bookings at commit time.
func MigrateConstraints(db *gorm.DB) error {
	err := db.Exec(`
		DO $$ BEGIN
			ALTER TABLE booking
			ADD CONSTRAINT uq_booking_match_seat
			UNIQUE (match_id, seat_id);
		EXCEPTION
			WHEN duplicate_table THEN NULL;
			WHEN duplicate_object THEN NULL;
		END $$;
	`).Error
	if err != nil {
		return err
	}

	// Referential integrity for the ledger and the catalog. AutoMigrate
	// does not create these because the models hold plain id fields
	// rather than association structs.
	foreignKeys := []string{
		`ALTER TABLE seating ADD CONSTRAINT fk_seating_stadium
			FOREIGN KEY (stadium_id) REFERENCES stadium (stadium_id)`,
		`ALTER TABLE "match" ADD CONSTRAINT fk_match_stadium
			FOREIGN KEY (stadium_id) REFERENCES stadium (stadium_id)`,
		`ALTER TABLE booking ADD CONSTRAINT fk_booking_match
			FOREIGN KEY (match_id) REFERENCES "match" (match_id)`,
		`ALTER TABLE booking ADD CONSTRAINT fk_booking_seat
			FOREIGN KEY (seat_id) REFERENCES seating (seat_id)`,
		`ALTER TABLE booking ADD CONSTRAINT fk_booking_user
			FOREIGN KEY (user_id) REFERENCES "user" (user_id)`,
	}
	for _, stmt := range foreignKeys {
		err = db.Exec(`
			DO $$ BEGIN
				` + stmt + `;
			EXCEPTION
				WHEN duplicate_object THEN NULL;
			END $$;
		`).Error
		if err != nil {
			return err
		}
	}

	// Index for availability lookups (bookings per match)
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_match_id
		ON booking (match_id);
	`).Error
	if err != nil {
		return err
	}

	// Index for booking history lookups (bookings per user)
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_user_id
		ON booking (user_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
