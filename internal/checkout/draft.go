package checkout

import (
	"fmt"
	"math"
	"time"
)

// AmountTolerance is the largest float drift accepted when re-checking the
// draft's arithmetic on load.
const AmountTolerance = 0.01

// Draft is the transient, single-use record carried from the seat-selection
// page to the checkout page. It is created when the user proceeds from seat
// selection, consumed after a successful booking, and simply abandoned if
// the user walks away: an orphaned draft expires with its TTL and is not an
// error.
type Draft struct {
	ShowtimeID    string    `json:"showtime_id"`
	Seats         []string  `json:"seats"`
	UnitPrice     float64   `json:"unit_price"`
	Subtotal      float64   `json:"subtotal"`
	PromoCode     string    `json:"promo_code,omitempty"`
	PromotionID   string    `json:"promotion_id,omitempty"`
	PromotionName string    `json:"promotion_name,omitempty"`
	Discount      float64   `json:"discount"`
	Total         float64   `json:"total"`
	SavedAt       time.Time `json:"saved_at"`
}

// HasPromotion reports whether a validated promotion is attached.
func (d *Draft) HasPromotion() bool {
	return d.PromotionID != ""
}

// Validate re-checks the structural and arithmetic invariants. A draft that
// fails here is treated the same as a missing one: checkout cannot proceed
// and the user returns to seat selection.
func (d *Draft) Validate() error {
	if d.ShowtimeID == "" {
		return fmt.Errorf("draft has no showtime")
	}
	if len(d.Seats) == 0 {
		return fmt.Errorf("draft has no seats")
	}
	seen := make(map[string]struct{}, len(d.Seats))
	for _, label := range d.Seats {
		if label == "" {
			return fmt.Errorf("draft has an empty seat label")
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("draft has duplicate seat %s", label)
		}
		seen[label] = struct{}{}
	}

	if d.UnitPrice < 0 || d.Subtotal < 0 {
		return fmt.Errorf("draft has negative amounts")
	}
	if d.Discount < 0 {
		return fmt.Errorf("draft discount is negative")
	}
	if d.Discount > d.Subtotal+AmountTolerance {
		return fmt.Errorf("draft discount exceeds subtotal")
	}
	if math.Abs(d.Subtotal-d.UnitPrice*float64(len(d.Seats))) > AmountTolerance {
		return fmt.Errorf("draft subtotal does not match unit price and seat count")
	}
	if math.Abs(d.Total-(d.Subtotal-d.Discount)) > AmountTolerance {
		return fmt.Errorf("draft total does not match subtotal and discount")
	}
	if d.Total < 0 {
		return fmt.Errorf("draft total is negative")
	}
	if d.HasPromotion() == (d.PromoCode == "") {
		return fmt.Errorf("draft promotion fields are inconsistent")
	}
	if !d.HasPromotion() && d.Discount != 0 {
		return fmt.Errorf("draft has a discount without a promotion")
	}

	return nil
}
