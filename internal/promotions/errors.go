package promotions

import "errors"

// Validation rejections. All of these are user-correctable: the caller keeps
// the seat selection intact, shows the reason inline, and lets the user try
// another code. Anything else coming out of Check is a transient storage
// failure and may be retried as-is.
var (
	ErrEmptyCode               = errors.New("coupon code is empty")
	ErrCodeNotFound            = errors.New("coupon code not found")
	ErrCodeExpired             = errors.New("coupon code is expired or not yet active")
	ErrNotEligible             = errors.New("coupon is not eligible for this movie or cinema")
	ErrMinOrderNotMet          = errors.New("order subtotal is below the coupon minimum")
	ErrUsageLimitReached       = errors.New("coupon usage limit reached")
	ErrDiscountExceedsSubtotal = errors.New("discount exceeds subtotal")
)

// IsRejection reports whether err is a coupon validation rejection rather
// than a transient failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrEmptyCode) ||
		errors.Is(err, ErrCodeNotFound) ||
		errors.Is(err, ErrCodeExpired) ||
		errors.Is(err, ErrNotEligible) ||
		errors.Is(err, ErrMinOrderNotMet) ||
		errors.Is(err, ErrUsageLimitReached) ||
		errors.Is(err, ErrDiscountExceedsSubtotal)
}
