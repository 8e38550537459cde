// Package pricing computes booking amounts. Everything here is pure: the
// promotion step owns the decision of whether a discount is acceptable, and
// must reject any discount greater than the subtotal before calling Total.
package pricing

// Subtotal is the per-seat price times the number of seats.
func Subtotal(unitPrice float64, seatCount int) float64 {
	return unitPrice * float64(seatCount)
}

// Total applies a discount, clamping at zero. The clamp is a last line of
// defense; a discount exceeding the subtotal should already have been
// rejected as a validation failure upstream.
func Total(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
