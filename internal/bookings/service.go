package bookings

import (
	"context"
	"errors"
	"time"

	"matchday/pkg/logger"
)

// maxReferenceAttempts bounds retries when a generated booking number
// collides with an existing one.
const maxReferenceAttempts = 5

// MatchCatalog resolves a match to its stadium.
type MatchCatalog interface {
	GetStadiumID(ctx context.Context, matchID int64) (int64, bool, error)
}

// SeatCatalog resolves seat ids to their stadiums. Unknown ids are absent
// from the returned map.
type SeatCatalog interface {
	GetStadiumIDs(ctx context.Context, seatIDs []int64) (map[int64]int64, error)
}

// UserCatalog reports whether a user id is valid.
type UserCatalog interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// Notifier publishes booking confirmations downstream. Implementations
// must not block the booking path on broker trouble.
type Notifier interface {
	BookingConfirmed(ctx context.Context, bookingNumber string, matchID, userID int64, seatIDs []int64) error
}

type Service interface {
	// BookSeats atomically claims a set of seats for a match. On success
	// every seat is committed under one fresh booking reference; on any
	// failure nothing is.
	BookSeats(ctx context.Context, req BookSeatsRequest) (*BookingReceipt, error)

	// History returns the user's booked seats, denormalized for display.
	History(ctx context.Context, userID int64) ([]HistoryRow, error)
}

type service struct {
	repo     Repository
	matches  MatchCatalog
	seats    SeatCatalog
	users    UserCatalog
	notifier Notifier
	logger   *logger.Logger
}

// NewService wires the booking engine. notifier may be nil when the
// confirmation pipeline is disabled.
func NewService(repo Repository, matchCatalog MatchCatalog, seatCatalog SeatCatalog, userCatalog UserCatalog, notifier Notifier, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		matches:  matchCatalog,
		seats:    seatCatalog,
		users:    userCatalog,
		notifier: notifier,
		logger:   log,
	}
}

func (s *service) BookSeats(ctx context.Context, req BookSeatsRequest) (*BookingReceipt, error) {
	seatIDs := dedupeSeatIDs(req.SeatIDs)
	if len(seatIDs) == 0 {
		return nil, ErrEmptySeatSet
	}

	stadiumID, found, err := s.matches.GetStadiumID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMatchNotFound
	}

	exists, err := s.users.Exists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	seatStadiums, err := s.seats.GetStadiumIDs(ctx, seatIDs)
	if err != nil {
		return nil, err
	}
	for _, seatID := range seatIDs {
		seatStadium, ok := seatStadiums[seatID]
		if !ok {
			return nil, ErrSeatNotFound
		}
		if seatStadium != stadiumID {
			return nil, ErrSeatOutsideStadium
		}
	}

	receipt, err := s.commit(ctx, req.MatchID, req.UserID, seatIDs)
	if err != nil {
		if errors.Is(err, ErrSeatConflict) {
			s.logger.LogBookingConflict(ctx, req.MatchID, req.UserID, len(seatIDs))
		}
		return nil, err
	}

	s.logger.LogBookingCommitted(ctx, receipt.BookingNumber, receipt.MatchID, receipt.UserID, len(receipt.SeatIDs))
	s.publishConfirmation(receipt)

	return receipt, nil
}

// commit inserts the booking rows, retrying with a fresh reference when
// the generated one is already taken. Seat conflicts are not retried;
// those seats are gone.
func (s *service) commit(ctx context.Context, matchID, userID int64, seatIDs []int64) (*BookingReceipt, error) {
	var lastErr error

	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref, err := GenerateReference()
		if err != nil {
			return nil, err
		}

		createdOn := time.Now().UTC()
		rows := make([]Booking, 0, len(seatIDs))
		for _, seatID := range seatIDs {
			rows = append(rows, Booking{
				BookingNumber: ref,
				MatchID:       matchID,
				SeatID:        seatID,
				UserID:        userID,
				CreatedOn:     createdOn,
			})
		}

		err = s.repo.CreateAll(ctx, rows)
		if err == nil {
			return &BookingReceipt{
				BookingNumber: ref,
				MatchID:       matchID,
				SeatIDs:       seatIDs,
				UserID:        userID,
				CreatedOn:     createdOn,
			}, nil
		}
		if !errors.Is(err, ErrReferenceConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (s *service) publishConfirmation(receipt *BookingReceipt) {
	if s.notifier == nil {
		return
	}

	// Confirmations are best effort; the booking already committed.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := s.notifier.BookingConfirmed(ctx, receipt.BookingNumber, receipt.MatchID, receipt.UserID, receipt.SeatIDs)
		if err != nil {
			s.logger.WithError(err).Warn("booking confirmation publish failed",
				"booking_number", receipt.BookingNumber)
		}
	}()
}

func (s *service) History(ctx context.Context, userID int64) ([]HistoryRow, error) {
	return s.repo.HistoryByUser(ctx, userID)
}

// dedupeSeatIDs drops repeated ids while keeping first-seen order, so a
// request listing a seat twice books it once.
func dedupeSeatIDs(seatIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(seatIDs))
	result := make([]int64, 0, len(seatIDs))
	for _, id := range seatIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
