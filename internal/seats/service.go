package seats

import (
	"context"
	"fmt"

	"cinebook/internal/showtimes"
)

type Service interface {
	// GetSeatMap returns the hall grid with per-seat status for rendering.
	GetSeatMap(ctx context.Context, showtimeID string) (*SeatMapResponse, error)

	// ValidateSelection checks a candidate seat list against the showtime's
	// live seat sets. Returns the normalized (deduplicated, hall-ordered)
	// labels, or an error naming the first offending seat.
	ValidateSelection(detail *showtimes.ShowtimeDetail, seatLabels []string) ([]string, error)
}

type service struct {
	showtimeService showtimes.Service
}

func NewService(showtimeService showtimes.Service) Service {
	return &service{showtimeService: showtimeService}
}

func (s *service) GetSeatMap(ctx context.Context, showtimeID string) (*SeatMapResponse, error) {
	detail, err := s.showtimeService.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	return buildSeatMap(detail), nil
}

func (s *service) ValidateSelection(detail *showtimes.ShowtimeDetail, seatLabels []string) ([]string, error) {
	if len(seatLabels) == 0 {
		return nil, ErrNoSeatsSelected
	}

	avail := NewAvailability(detail.AvailableSeats, detail.BookedSeats)

	seen := make(map[string]struct{}, len(seatLabels))
	sel := NewSelection()
	for _, label := range seatLabels {
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSeat, label)
		}
		seen[label] = struct{}{}

		if !avail.Known(label) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeat, label)
		}
		if !avail.IsAvailable(label) {
			return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, label)
		}
		sel.Toggle(label, avail)
	}

	return sel.Labels(), nil
}
