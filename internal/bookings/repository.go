package bookings

import (
	"context"
	"time"

	"cinebook/internal/showtimes"

	"gorm.io/gorm"
)

type Repository interface {
	// CreateBookingWithSeatCheck atomically flips the requested seats from
	// AVAILABLE to BOOKED and inserts the booking. This is the authoritative
	// server-side conflict check: if any seat was taken since the client's
	// last availability fetch, nothing is written and ErrSeatsTaken is
	// returned.
	CreateBookingWithSeatCheck(ctx context.Context, booking *Booking) error

	GetBookingByRef(ctx context.Context, ref string) (*Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBookingWithSeatCheck(ctx context.Context, booking *Booking) error {
	seatLabels := make([]string, 0, len(booking.Seats))
	for _, seat := range booking.Seats {
		seatLabels = append(seatLabels, seat.SeatLabel)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&showtimes.ShowtimeSeat{}).
			Where("showtime_id = ? AND seat_label IN ? AND status = ?",
				booking.ShowtimeID, seatLabels, showtimes.SeatStatusAvailable).
			Updates(map[string]interface{}{
				"status":     showtimes.SeatStatusBooked,
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}

		// Fewer rows flipped than requested means a concurrent booking won
		// at least one of the seats; roll everything back.
		if result.RowsAffected != int64(len(seatLabels)) {
			return ErrSeatsTaken
		}

		return tx.Create(booking).Error
	})
}

func (r *repository) GetBookingByRef(ctx context.Context, ref string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Cinema").
		Preload("Showtime.Hall").
		Where("booking_ref = ?", ref).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
