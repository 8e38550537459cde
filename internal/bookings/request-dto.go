package bookings

// CreateBookingRequest carries everything the checkout orchestrator resolved
// from the draft. Pricing fields arrive pre-validated; this service re-checks
// nothing but seat availability, which only the database can answer.
type CreateBookingRequest struct {
	SessionID     string
	UserID        string
	ShowtimeID    string
	Seats         []string
	UnitPrice     float64
	Subtotal      float64
	Discount      float64
	Total         float64
	PromotionCode string
	PaymentMethod string
}
