package promotions

// CheckCouponResult is the validated outcome of a coupon check. The discount
// was computed against the TotalAmount of the originating request; callers
// must discard it if that basis changes.
type CheckCouponResult struct {
	PromotionID    string  `json:"promotion_id"`
	Name           string  `json:"name"`
	DiscountAmount float64 `json:"discount_amount"`
}
