package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	// CreateBooking persists a booking for the given pricing and seat data.
	// Returns ErrSeatsTaken when a concurrent user got there first.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingConfirmation, error)

	// GetBookingByRef returns the confirmation view of a persisted booking.
	GetBookingByRef(ctx context.Context, ref string) (*BookingConfirmation, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingConfirmation, error) {
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}
	if len(req.Seats) == 0 {
		return nil, fmt.Errorf("no seats to book")
	}

	booking := &Booking{
		BookingRef:    generateBookingRef(),
		SessionID:     req.SessionID,
		ShowtimeID:    showtimeID,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		Total:         req.Total,
		PromotionCode: req.PromotionCode,
		PaymentMethod: req.PaymentMethod,
		Status:        StatusConfirmed.String(),
	}

	if req.UserID != "" {
		if userID, err := uuid.Parse(req.UserID); err == nil {
			booking.UserID = &userID
		}
	}

	for _, label := range req.Seats {
		booking.Seats = append(booking.Seats, BookingSeat{
			SeatLabel: label,
			SeatPrice: req.UnitPrice,
		})
	}

	if err := s.repo.CreateBookingWithSeatCheck(ctx, booking); err != nil {
		if errors.Is(err, ErrSeatsTaken) {
			return nil, ErrSeatsTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return toConfirmation(booking), nil
}

func (s *service) GetBookingByRef(ctx context.Context, ref string) (*BookingConfirmation, error) {
	booking, err := s.repo.GetBookingByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return toConfirmation(booking), nil
}

// generateBookingRef produces the short public identifier printed on the
// confirmation page.
func generateBookingRef() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CB-" + strings.ToUpper(raw[:10])
}
