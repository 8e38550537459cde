package checkout

// QuoteRequest carries the seat selection the user wants to take to
// checkout. CouponCode is optional; when present the coupon is validated
// against the priced selection in the same request.
type QuoteRequest struct {
	ShowtimeID string   `json:"showtime_id" validate:"required,uuid"`
	Seats      []string `json:"seats" validate:"required,min=1,dive,required"`
	CouponCode string   `json:"coupon_code,omitempty"`
}

// SubmitRequest finalizes checkout for the session's draft.
type SubmitRequest struct {
	PaymentMethod string `json:"payment_method"`
	TermsAccepted bool   `json:"terms_accepted"`
}
