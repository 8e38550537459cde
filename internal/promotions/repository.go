package promotions

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetPromotionByCode(ctx context.Context, code string) (*Promotion, error)
	RecordUsage(ctx context.Context, usage *PromotionUsage) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetPromotionByCode(ctx context.Context, code string) (*Promotion, error) {
	var promotion Promotion
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&promotion).Error
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

// RecordUsage inserts the usage row and bumps the promotion counter in one
// transaction.
func (r *repository) RecordUsage(ctx context.Context, usage *PromotionUsage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if usage.AppliedAt.IsZero() {
			usage.AppliedAt = time.Now().UTC()
		}
		if err := tx.Create(usage).Error; err != nil {
			return err
		}
		return tx.Model(&Promotion{}).
			Where("id = ?", usage.PromotionID).
			UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
	})
}