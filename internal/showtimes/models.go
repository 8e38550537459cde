package showtimes

import (
	"time"

	"github.com/google/uuid"
)

// Movie is the display minimum for the booking flow; full catalog management
// lives in the back-office service.
type Movie struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	PosterURL string    `json:"poster_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Cinema struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Hall struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CinemaID uuid.UUID `gorm:"type:uuid;index;not null" json:"cinema_id"`
	Name     string    `gorm:"not null" json:"name"`
	Rows     int       `gorm:"not null" json:"rows"`
	Columns  int       `gorm:"not null" json:"columns"`

	Cinema *Cinema `json:"cinema,omitempty" gorm:"foreignKey:CinemaID;constraint:OnDelete:CASCADE;"`
}

// Showtime is a scheduled screening of a movie in a specific hall.
type Showtime struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MovieID   uuid.UUID `gorm:"type:uuid;index;not null" json:"movie_id"`
	CinemaID  uuid.UUID `gorm:"type:uuid;index;not null" json:"cinema_id"`
	HallID    uuid.UUID `gorm:"type:uuid;index;not null" json:"hall_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Format    string    `gorm:"type:varchar(10)" json:"format"` // 2D, 3D, IMAX, 4DX
	Price     float64   `gorm:"not null" json:"price"`          // regular per-seat price
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Movie  *Movie  `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:RESTRICT;"`
	Cinema *Cinema `json:"cinema,omitempty" gorm:"foreignKey:CinemaID;constraint:OnDelete:RESTRICT;"`
	Hall   *Hall   `json:"hall,omitempty" gorm:"foreignKey:HallID;constraint:OnDelete:RESTRICT;"`

	Seats []ShowtimeSeat `json:"seats,omitempty" gorm:"foreignKey:ShowtimeID;constraint:OnDelete:CASCADE;"`
}

// ShowtimeSeat tracks one seat of one showtime. The seat label is the row
// letter plus the 1-based column number ("C7").
type ShowtimeSeat struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;index:idx_showtime_seat,unique;not null" json:"showtime_id"`
	SeatLabel  string    `gorm:"type:varchar(5);index:idx_showtime_seat,unique;not null" json:"seat_label"`
	Status     string    `gorm:"type:varchar(20);check:status IN ('AVAILABLE', 'BOOKED', 'BLOCKED');default:'AVAILABLE'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the table name for Showtime
func (Showtime) TableName() string {
	return "showtimes"
}

// TableName sets the table name for ShowtimeSeat
func (ShowtimeSeat) TableName() string {
	return "showtime_seats"
}

const (
	SeatStatusAvailable = "AVAILABLE"
	SeatStatusBooked    = "BOOKED"
	SeatStatusBlocked   = "BLOCKED"
)

// AvailableSeatLabels returns the labels of seats still open for booking.
func (s *Showtime) AvailableSeatLabels() []string {
	labels := make([]string, 0, len(s.Seats))
	for _, seat := range s.Seats {
		if seat.Status == SeatStatusAvailable {
			labels = append(labels, seat.SeatLabel)
		}
	}
	return labels
}

// BookedSeatLabels returns the labels of seats already taken.
func (s *Showtime) BookedSeatLabels() []string {
	labels := make([]string, 0, len(s.Seats))
	for _, seat := range s.Seats {
		if seat.Status == SeatStatusBooked {
			labels = append(labels, seat.SeatLabel)
		}
	}
	return labels
}
