package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"matchday/internal/matches"
	"matchday/internal/seats"
	"matchday/internal/shared/config"
	"matchday/internal/shared/constants"
	"matchday/internal/shared/database"
	"matchday/internal/stadiums"
	"matchday/internal/users"
	"matchday/pkg/cache"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Matchday Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded successfully")

	fmt.Println("\nSeeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"booking",
		"seating",
		`"match"`,
		"stadium",
		`"user"`,
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedUsers(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	stadiumIDs, err := s.SeedStadiums(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed stadiums: %w", err)
	}

	if err := s.SeedSeating(ctx, stadiumIDs); err != nil {
		return fmt.Errorf("failed to seed seating: %w", err)
	}

	if err := s.SeedMatches(ctx, stadiumIDs); err != nil {
		return fmt.Errorf("failed to seed matches: %w", err)
	}

	// Bust the match listing cache so the API serves fresh seed data
	cacheService := cache.NewService(s.db.Redis)
	if err := cacheService.Delete(ctx, constants.CACHE_KEY_MATCH_LIST); err != nil {
		log.Printf("Warning: Failed to clear match list cache: %v", err)
	}

	return nil
}

// SeedUsers creates a handful of spectators.
func (s *Seeder) SeedUsers(ctx context.Context) error {
	fmt.Println("  Seeding users...")

	repo := users.NewRepository(s.db.PostgreSQL)
	seedUsers := []users.User{
		{Name: "Rohit Verma", Email: "rohit.verma@example.com", Contact: "9876543210"},
		{Name: "Ananya Iyer", Email: "ananya.iyer@example.com", Contact: "9876543211"},
		{Name: "Kabir Shah", Email: "kabir.shah@example.com", Contact: "9876543212"},
		{Name: "Meera Nair", Email: "meera.nair@example.com", Contact: "9876543213"},
		{Name: "Arjun Pillai", Email: "arjun.pillai@example.com", Contact: "9876543214"},
	}

	for i := range seedUsers {
		if err := repo.Create(ctx, &seedUsers[i]); err != nil {
			return err
		}
	}

	fmt.Printf("  Created %d users\n", len(seedUsers))
	return nil
}

// SeedStadiums creates the venues.
func (s *Seeder) SeedStadiums(ctx context.Context) ([]int64, error) {
	fmt.Println("  Seeding stadiums...")

	repo := stadiums.NewRepository(s.db.PostgreSQL)
	seedStadiums := []stadiums.Stadium{
		{Name: "Wankhede Stadium", City: "Mumbai", State: "Maharashtra", SeatCapacity: 120},
		{Name: "Eden Gardens", City: "Kolkata", State: "West Bengal", SeatCapacity: 120},
		{Name: "M. Chinnaswamy Stadium", City: "Bengaluru", State: "Karnataka", SeatCapacity: 120},
	}

	ids := make([]int64, 0, len(seedStadiums))
	for i := range seedStadiums {
		if err := repo.Create(ctx, &seedStadiums[i]); err != nil {
			return nil, err
		}
		ids = append(ids, seedStadiums[i].StadiumID)
	}

	fmt.Printf("  Created %d stadiums\n", len(seedStadiums))
	return ids, nil
}

// SeedSeating creates the seat inventory: four stands of thirty seats per
// stadium, matching each stadium's declared capacity.
func (s *Seeder) SeedSeating(ctx context.Context, stadiumIDs []int64) error {
	fmt.Println("  Seeding seating...")

	repo := seats.NewRepository(s.db.PostgreSQL)
	stands := []string{"North Stand", "South Stand", "East Stand", "West Stand"}
	const seatsPerStand = 30

	total := 0
	for _, stadiumID := range stadiumIDs {
		seatRows := make([]seats.Seat, 0, len(stands)*seatsPerStand)
		for _, stand := range stands {
			for number := 1; number <= seatsPerStand; number++ {
				seatRows = append(seatRows, seats.Seat{
					StadiumID:  stadiumID,
					StandName:  stand,
					SeatNumber: strconv.Itoa(number),
				})
			}
		}
		if err := repo.CreateBatch(ctx, seatRows); err != nil {
			return err
		}
		total += len(seatRows)
	}

	fmt.Printf("  Created %d seats\n", total)
	return nil
}

// SeedMatches schedules two fixtures per stadium over the coming weeks.
func (s *Seeder) SeedMatches(ctx context.Context, stadiumIDs []int64) error {
	fmt.Println("  Seeding matches...")

	repo := matches.NewRepository(s.db.PostgreSQL)
	names := []string{
		"Mumbai Mavericks vs Kolkata Knights",
		"Bengaluru Blasters vs Mumbai Mavericks",
		"Kolkata Knights vs Bengaluru Blasters",
		"Mumbai Mavericks vs Bengaluru Blasters",
		"Kolkata Knights vs Mumbai Mavericks",
		"Bengaluru Blasters vs Kolkata Knights",
	}
	times := []string{"15:00", "19:30"}

	count := 0
	for i, name := range names {
		match := matches.Match{
			MatchName: name,
			MatchDate: time.Now().UTC().AddDate(0, 0, 7+i*3).Truncate(24 * time.Hour),
			MatchTime: times[i%len(times)],
			StadiumID: stadiumIDs[i%len(stadiumIDs)],
		}
		if err := repo.Create(ctx, &match); err != nil {
			return err
		}
		count++
	}

	fmt.Printf("  Created %d matches\n", count)
	return nil
}
