package checkout

import (
	"time"

	"cinebook/internal/bookings"
	"cinebook/internal/showtimes"
)

// QuoteResponse is returned when a selection is priced and (optionally) a
// coupon is validated. The same figures are persisted in the session draft.
type QuoteResponse struct {
	ShowtimeID    string   `json:"showtime_id"`
	Seats         []string `json:"seats"`
	UnitPrice     float64  `json:"unit_price"`
	Subtotal      float64  `json:"subtotal"`
	PromoCode     string   `json:"promo_code,omitempty"`
	PromotionName string   `json:"promotion_name,omitempty"`
	Discount      float64  `json:"discount"`
	Total         float64  `json:"total"`
}

// CheckoutView is the checkout page payload: the saved draft enriched with
// current showtime display data.
type CheckoutView struct {
	State         string    `json:"state"`
	ShowtimeID    string    `json:"showtime_id"`
	MovieTitle    string    `json:"movie_title,omitempty"`
	CinemaName    string    `json:"cinema_name,omitempty"`
	HallName      string    `json:"hall_name,omitempty"`
	StartTime     time.Time `json:"start_time"`
	Format        string    `json:"format,omitempty"`
	Seats         []string  `json:"seats"`
	UnitPrice     float64   `json:"unit_price"`
	Subtotal      float64   `json:"subtotal"`
	PromoCode     string    `json:"promo_code,omitempty"`
	PromotionName string    `json:"promotion_name,omitempty"`
	Discount      float64   `json:"discount"`
	Total         float64   `json:"total"`
}

// SubmitResponse wraps the persisted booking confirmation.
type SubmitResponse struct {
	State   string                        `json:"state"`
	Booking *bookings.BookingConfirmation `json:"booking"`
}

func toQuoteResponse(d *Draft) *QuoteResponse {
	return &QuoteResponse{
		ShowtimeID:    d.ShowtimeID,
		Seats:         d.Seats,
		UnitPrice:     d.UnitPrice,
		Subtotal:      d.Subtotal,
		PromoCode:     d.PromoCode,
		PromotionName: d.PromotionName,
		Discount:      d.Discount,
		Total:         d.Total,
	}
}

func toCheckoutView(d *Draft, detail *showtimes.ShowtimeDetail) *CheckoutView {
	view := &CheckoutView{
		State:         StateReady.String(),
		ShowtimeID:    d.ShowtimeID,
		Seats:         d.Seats,
		UnitPrice:     d.UnitPrice,
		Subtotal:      d.Subtotal,
		PromoCode:     d.PromoCode,
		PromotionName: d.PromotionName,
		Discount:      d.Discount,
		Total:         d.Total,
	}

	if detail != nil {
		view.MovieTitle = detail.MovieTitle
		view.CinemaName = detail.CinemaName
		view.HallName = detail.HallName
		view.StartTime = detail.StartTime
		view.Format = detail.Format
	}

	return view
}
