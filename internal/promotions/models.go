package promotions

import (
	"time"

	"github.com/google/uuid"
)

// Promotion is a server-validated discount rule applied against a subtotal.
type Promotion struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code          string    `gorm:"type:varchar(50);unique;not null" json:"code"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	DiscountType  string    `gorm:"type:varchar(20);check:discount_type IN ('percentage', 'fixed');not null" json:"discount_type"`
	DiscountValue float64   `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	MinOrder      float64   `gorm:"type:decimal(10,2);default:0" json:"min_order"`
	StartDate     time.Time `gorm:"not null" json:"start_date"`
	EndDate       time.Time `gorm:"not null" json:"end_date"`
	MaxUsage      int       `gorm:"default:0" json:"max_usage"` // 0 means unlimited
	UsedCount     int       `gorm:"default:0" json:"used_count"`
	Status        string    `gorm:"type:varchar(20);check:status IN ('active', 'inactive');default:'active'" json:"status"`

	// Eligibility scope; nil means the promotion applies everywhere.
	CinemaID *uuid.UUID `gorm:"type:uuid;index" json:"cinema_id,omitempty"`
	MovieID  *uuid.UUID `gorm:"type:uuid;index" json:"movie_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PromotionUsage records one application of a promotion to a booking.
type PromotionUsage struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PromotionID     uuid.UUID `gorm:"type:uuid;index;not null" json:"promotion_id"`
	BookingID       uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	DiscountApplied float64   `gorm:"type:decimal(10,2);not null" json:"discount_applied"`
	AppliedAt       time.Time `gorm:"not null" json:"applied_at"`
}

// TableName sets the table name for Promotion
func (Promotion) TableName() string {
	return "promotions"
}

// TableName sets the table name for PromotionUsage
func (PromotionUsage) TableName() string {
	return "promotion_usages"
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// IsActive reports whether the promotion is live at the given time.
func (p *Promotion) IsActive(now time.Time) bool {
	return p.Status == StatusActive &&
		!now.Before(p.StartDate) &&
		!now.After(p.EndDate)
}

// UsageExhausted reports whether the usage cap has been reached.
func (p *Promotion) UsageExhausted() bool {
	return p.MaxUsage > 0 && p.UsedCount >= p.MaxUsage
}
