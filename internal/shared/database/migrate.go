package database

import (
	"cinebook/internal/bookings"
	"cinebook/internal/promotions"
	"cinebook/internal/showtimes"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&showtimes.Movie{},
		&showtimes.Cinema{},
		&showtimes.Hall{},
		&showtimes.Showtime{},
		&showtimes.ShowtimeSeat{},
		&promotions.Promotion{},
		&promotions.PromotionUsage{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
	)
}
