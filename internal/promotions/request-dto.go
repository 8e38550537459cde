package promotions

// CheckCouponRequest carries the candidate code plus the pricing basis and
// screening context needed for eligibility.
type CheckCouponRequest struct {
	CouponCode  string  `json:"coupon_code" validate:"required"`
	TotalAmount float64 `json:"total_amount" validate:"gte=0"`
	MovieID     string  `json:"movie_id" validate:"required,uuid"`
	CinemaID    string  `json:"cinema_id" validate:"required,uuid"`
}
