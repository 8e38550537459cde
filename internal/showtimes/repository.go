package showtimes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// GetShowtimeWithSeats loads the showtime with its display relations
	// and the full seat inventory.
	GetShowtimeWithSeats(ctx context.Context, id uuid.UUID) (*Showtime, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetShowtimeWithSeats(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Cinema").
		Preload("Hall").
		Preload("Seats").
		Where("id = ?", id).
		First(&showtime).Error
	if err != nil {
		return nil, err
	}
	return &showtime, nil
}
