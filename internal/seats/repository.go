package seats

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// AvailableForMatch returns the seats of the match's stadium that
	// have no committed booking for that match.
	AvailableForMatch(ctx context.Context, matchID int64) ([]Seat, error)

	// GetStadiumIDs maps each existing seat id to its stadium. Missing
	// ids are simply absent from the result.
	GetStadiumIDs(ctx context.Context, seatIDs []int64) (map[int64]int64, error)

	CreateBatch(ctx context.Context, seatRows []Seat) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// AvailableForMatch reads committed bookings only. Availability can be
// stale the moment it is returned; the booking transaction is the sole
// arbiter of who gets a seat.
func (r *repository) AvailableForMatch(ctx context.Context, matchID int64) ([]Seat, error) {
	var seatRows []Seat
	err := r.db.WithContext(ctx).
		Where(`stadium_id = (SELECT stadium_id FROM "match" WHERE match_id = ?)`, matchID).
		Where("seat_id NOT IN (SELECT seat_id FROM booking WHERE match_id = ?)", matchID).
		Order("stand_name, seat_number").
		Find(&seatRows).Error
	if err != nil {
		return nil, err
	}
	return seatRows, nil
}

func (r *repository) GetStadiumIDs(ctx context.Context, seatIDs []int64) (map[int64]int64, error) {
	var seatRows []Seat
	err := r.db.WithContext(ctx).
		Select("seat_id, stadium_id").
		Where("seat_id IN ?", seatIDs).
		Find(&seatRows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[int64]int64, len(seatRows))
	for _, seat := range seatRows {
		result[seat.SeatID] = seat.StadiumID
	}
	return result, nil
}

func (r *repository) CreateBatch(ctx context.Context, seatRows []Seat) error {
	return r.db.WithContext(ctx).CreateInBatches(seatRows, 500).Error
}
