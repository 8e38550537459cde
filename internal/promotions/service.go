package promotions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	// Check validates a coupon code against the subtotal and screening
	// context. The returned discount always satisfies
	// 0 <= discount <= subtotal; a rule that would compute more is a
	// rejection (ErrDiscountExceedsSubtotal), never silently clamped.
	Check(ctx context.Context, req CheckCouponRequest) (*CheckCouponResult, error)

	// RecordUsage marks one application of the promotion to a booking.
	RecordUsage(ctx context.Context, promotionID, bookingID string, discount float64) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Check(ctx context.Context, req CheckCouponRequest) (*CheckCouponResult, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CouponCode))
	if code == "" {
		return nil, ErrEmptyCode
	}

	promotion, err := s.repo.GetPromotionByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}

	if !promotion.IsActive(s.now()) {
		return nil, ErrCodeExpired
	}
	if promotion.UsageExhausted() {
		return nil, ErrUsageLimitReached
	}
	if req.TotalAmount < promotion.MinOrder {
		return nil, ErrMinOrderNotMet
	}
	if !eligible(promotion, req) {
		return nil, ErrNotEligible
	}

	discount := computeDiscount(promotion, req.TotalAmount)
	if discount < 0 {
		return nil, ErrNotEligible
	}
	if discount > req.TotalAmount {
		return nil, ErrDiscountExceedsSubtotal
	}

	return &CheckCouponResult{
		PromotionID:    promotion.ID.String(),
		Name:           promotion.Name,
		DiscountAmount: discount,
	}, nil
}

func (s *service) RecordUsage(ctx context.Context, promotionID, bookingID string, discount float64) error {
	promoUUID, err := uuid.Parse(promotionID)
	if err != nil {
		return fmt.Errorf("invalid promotion ID: %w", err)
	}
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID: %w", err)
	}

	usage := &PromotionUsage{
		PromotionID:     promoUUID,
		BookingID:       bookingUUID,
		DiscountApplied: discount,
		AppliedAt:       s.now().UTC(),
	}
	if err := s.repo.RecordUsage(ctx, usage); err != nil {
		return fmt.Errorf("failed to record promotion usage: %w", err)
	}
	return nil
}

func eligible(p *Promotion, req CheckCouponRequest) bool {
	if p.CinemaID != nil && p.CinemaID.String() != req.CinemaID {
		return false
	}
	if p.MovieID != nil && p.MovieID.String() != req.MovieID {
		return false
	}
	return true
}

// computeDiscount rounds percentage discounts to two decimal places.
func computeDiscount(p *Promotion, subtotal float64) float64 {
	switch p.DiscountType {
	case DiscountTypePercentage:
		return math.Round(subtotal*p.DiscountValue) / 100
	case DiscountTypeFixed:
		return p.DiscountValue
	default:
		return -1
	}
}
