package showtimes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	// GetShowtime returns the showtime with both seat sets resolved. Both
	// available_seats and booked_seats are authoritative: consumers must
	// treat a seat as selectable only when it appears in the first and not
	// in the second.
	GetShowtime(ctx context.Context, id string) (*ShowtimeDetail, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetShowtime(ctx context.Context, id string) (*ShowtimeDetail, error) {
	showtimeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	showtime, err := s.repo.GetShowtimeWithSeats(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, fmt.Errorf("failed to get showtime: %w", err)
	}

	return toShowtimeDetail(showtime), nil
}
