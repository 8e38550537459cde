package bookings

import "time"

// BookingConfirmation is the persisted booking as shown on the confirmation
// page.
type BookingConfirmation struct {
	BookingID     string    `json:"booking_id"`
	BookingRef    string    `json:"booking_ref"`
	Status        string    `json:"status"`
	ShowtimeID    string    `json:"showtime_id"`
	MovieTitle    string    `json:"movie_title,omitempty"`
	CinemaName    string    `json:"cinema_name,omitempty"`
	HallName      string    `json:"hall_name,omitempty"`
	StartTime     time.Time `json:"start_time,omitempty"`
	Format        string    `json:"format,omitempty"`
	Seats         []string  `json:"seats"`
	Subtotal      float64   `json:"subtotal"`
	Discount      float64   `json:"discount"`
	Total         float64   `json:"total"`
	PromotionCode string    `json:"promotion_code,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func toConfirmation(b *Booking) *BookingConfirmation {
	confirmation := &BookingConfirmation{
		BookingID:     b.ID.String(),
		BookingRef:    b.BookingRef,
		Status:        b.Status,
		ShowtimeID:    b.ShowtimeID.String(),
		Seats:         b.SeatLabels(),
		Subtotal:      b.Subtotal,
		Discount:      b.Discount,
		Total:         b.Total,
		PromotionCode: b.PromotionCode,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     b.CreatedAt,
	}

	if b.Showtime != nil {
		confirmation.StartTime = b.Showtime.StartTime
		confirmation.Format = b.Showtime.Format
		if b.Showtime.Movie != nil {
			confirmation.MovieTitle = b.Showtime.Movie.Title
		}
		if b.Showtime.Cinema != nil {
			confirmation.CinemaName = b.Showtime.Cinema.Name
		}
		if b.Showtime.Hall != nil {
			confirmation.HallName = b.Showtime.Hall.Name
		}
	}

	return confirmation
}
