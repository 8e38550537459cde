package promotions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRepository struct {
	GetPromotionByCodeFunc func(ctx context.Context, code string) (*Promotion, error)
	RecordUsageFunc        func(ctx context.Context, usage *PromotionUsage) error
}

func (m *mockRepository) GetPromotionByCode(ctx context.Context, code string) (*Promotion, error) {
	return m.GetPromotionByCodeFunc(ctx, code)
}

func (m *mockRepository) RecordUsage(ctx context.Context, usage *PromotionUsage) error {
	return m.RecordUsageFunc(ctx, usage)
}

var checkTime = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func livePromotion() *Promotion {
	return &Promotion{
		ID:            uuid.New(),
		Code:          "SAVE10",
		Name:          "Save 10 Percent",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		StartDate:     checkTime.AddDate(0, -1, 0),
		EndDate:       checkTime.AddDate(0, 1, 0),
		Status:        StatusActive,
	}
}

func newTestService(repo Repository) *service {
	return &service{repo: repo, now: func() time.Time { return checkTime }}
}

func checkRequest(subtotal float64) CheckCouponRequest {
	return CheckCouponRequest{
		CouponCode:  "SAVE10",
		TotalAmount: subtotal,
		MovieID:     uuid.NewString(),
		CinemaID:    uuid.NewString(),
	}
}

func TestCheckPercentageDiscount(t *testing.T) {
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			assert.Equal(t, "SAVE10", code)
			return livePromotion(), nil
		},
	}
	svc := newTestService(repo)

	result, err := svc.Check(context.Background(), checkRequest(900))
	require.NoError(t, err)
	assert.Equal(t, float64(90), result.DiscountAmount)
	assert.Equal(t, "Save 10 Percent", result.Name)
}

func TestCheckFixedDiscount(t *testing.T) {
	p := livePromotion()
	p.DiscountType = DiscountTypeFixed
	p.DiscountValue = 150
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return p, nil
		},
	}
	svc := newTestService(repo)

	result, err := svc.Check(context.Background(), checkRequest(900))
	require.NoError(t, err)
	assert.Equal(t, float64(150), result.DiscountAmount)
}

func TestCheckNormalizesCode(t *testing.T) {
	var lookedUp string
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			lookedUp = code
			return livePromotion(), nil
		},
	}
	svc := newTestService(repo)

	req := checkRequest(900)
	req.CouponCode = "  save10 "
	_, err := svc.Check(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", lookedUp)
}

func TestCheckEmptyCode(t *testing.T) {
	svc := newTestService(&mockRepository{})

	req := checkRequest(900)
	req.CouponCode = "   "
	_, err := svc.Check(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestCheckCodeNotFound(t *testing.T) {
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestService(repo)

	_, err := svc.Check(context.Background(), checkRequest(900))
	assert.ErrorIs(t, err, ErrCodeNotFound)
	assert.True(t, IsRejection(err))
}

func TestCheckExpiredCode(t *testing.T) {
	p := livePromotion()
	p.EndDate = checkTime.AddDate(0, 0, -1)
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return p, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Check(context.Background(), checkRequest(900))
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestCheckInactiveCode(t *testing.T) {
	p := livePromotion()
	p.Status = StatusInactive
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return p, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Check(context.Background(), checkRequest(900))
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestCheckUsageLimitReached(t *testing.T) {
	p := livePromotion()
	p.MaxUsage = 100
	p.UsedCount = 100
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return p, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Check(context.Background(), checkRequest(900))
	assert.ErrorIs(t, err, ErrUsageLimitReached)
}

func TestCheckMinOrderNotMet(t *testing.T) {
	p := livePromotion()
	p.MinOrder = 1000
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return p, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Check(context.Background(), checkRequest(900))
	assert.ErrorIs(t, err, ErrMinOrderNotMet)
}

func TestCheckScopedToOtherMovie(t *testing.T) {
	otherMovie := uuid.New()
	p := livePromotion()
	p.MovieID = &otherMovie
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return p, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Check(context.Background(), checkRequest(900))
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestCheckFixedDiscountExceedingSubtotal(t *testing.T) {
	p := livePromotion()
	p.DiscountType = DiscountTypeFixed
	p.DiscountValue = 1200
	repo := &mockRepository{
		GetPromotionByCodeFunc: func(ctx context.Context, code string) (*Promotion, error) {
			return p, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Check(context.Background(), checkRequest(900))
	assert.ErrorIs(t, err, ErrDiscountExceedsSubtotal)
	assert.True(t, IsRejection(err))
}

func TestRecordUsage(t *testing.T) {
	var recorded *PromotionUsage
	repo := &mockRepository{
		RecordUsageFunc: func(ctx context.Context, usage *PromotionUsage) error {
			recorded = usage
			return nil
		},
	}
	svc := newTestService(repo)

	promoID := uuid.NewString()
	bookingID := uuid.NewString()
	err := svc.RecordUsage(context.Background(), promoID, bookingID, 90)
	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, promoID, recorded.PromotionID.String())
	assert.Equal(t, bookingID, recorded.BookingID.String())
	assert.Equal(t, float64(90), recorded.DiscountApplied)
}

func TestRecordUsageRejectsBadIDs(t *testing.T) {
	svc := newTestService(&mockRepository{})

	err := svc.RecordUsage(context.Background(), "not-a-uuid", uuid.NewString(), 90)
	assert.Error(t, err)
}
