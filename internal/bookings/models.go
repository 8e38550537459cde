package bookings

import (
	"time"

	"cinebook/internal/showtimes"

	"github.com/google/uuid"
)

// Booking is the persisted result of a successful checkout.
type Booking struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingRef    string     `gorm:"type:varchar(20);unique;not null" json:"booking_ref"`
	SessionID     string     `gorm:"type:varchar(64);index;not null" json:"session_id"`
	UserID        *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ShowtimeID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"showtime_id"`
	Subtotal      float64    `gorm:"not null" json:"subtotal"`
	Discount      float64    `gorm:"not null;default:0" json:"discount"`
	Total         float64    `gorm:"not null" json:"total"`
	PromotionCode string     `gorm:"type:varchar(50)" json:"promotion_code,omitempty"`
	PaymentMethod string     `gorm:"type:varchar(50);not null" json:"payment_method"`
	Status        string     `gorm:"type:varchar(20);check:status IN ('CONFIRMED', 'CANCELLED');default:'CONFIRMED'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Showtime *showtimes.Showtime `json:"showtime,omitempty" gorm:"foreignKey:ShowtimeID;constraint:OnDelete:RESTRICT;"`
	Seats    []BookingSeat       `json:"seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// BookingSeat is one seat of a booking.
type BookingSeat struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	SeatLabel string    `gorm:"type:varchar(5);not null" json:"seat_label"`
	SeatPrice float64   `gorm:"not null" json:"seat_price"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for BookingSeat
func (BookingSeat) TableName() string {
	return "booking_seats"
}

// SeatLabels returns the booked seat labels in insertion order.
func (b *Booking) SeatLabels() []string {
	labels := make([]string, 0, len(b.Seats))
	for _, seat := range b.Seats {
		labels = append(labels, seat.SeatLabel)
	}
	return labels
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed.String()
}
