package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a user's monthly allocation. Total and the per-category
// allocations are persisted; the Spent figures are views recomputed from the
// current expense set and never written back.
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"-"`
	UserID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Spent     decimal.Decimal `gorm:"-" json:"spent"`
	CreatedAt time.Time       `gorm:"not null" json:"-"`
	UpdatedAt time.Time       `gorm:"not null" json:"-"`

	CategoryBudgets []CategoryBudget `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"categoryBudgets"`
}

// CategoryBudget is a single category allocation inside a Budget.
type CategoryBudget struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"-"`
	BudgetID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Category string          `gorm:"type:varchar(50);not null" json:"category"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Spent    decimal.Decimal `gorm:"-" json:"spent"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.Total.IsNegative() {
		return errors.New("budget total must not be negative")
	}

	for _, cb := range b.CategoryBudgets {
		if err := cb.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (cb *CategoryBudget) BeforeCreate(tx *gorm.DB) error {
	if cb.ID == uuid.Nil {
		cb.ID = uuid.New()
	}
	return cb.Validate()
}

func (cb *CategoryBudget) Validate() error {
	if !IsValidCategory(cb.Category) {
		return fmt.Errorf("invalid category: %s", cb.Category)
	}

	if cb.Total.IsNegative() {
		return errors.New("category allocation must not be negative")
	}

	return nil
}

func (b *Budget) TableName() string {
	return "budgets"
}

func (cb *CategoryBudget) TableName() string {
	return "category_budgets"
}

// DefaultBudget returns the starter allocation assigned to every new user.
// Amounts are in rupees per month.
func DefaultBudget() Budget {
	alloc := func(category string, total int64) CategoryBudget {
		return CategoryBudget{Category: category, Total: decimal.NewFromInt(total)}
	}

	return Budget{
		Total: decimal.NewFromInt(15000),
		CategoryBudgets: []CategoryBudget{
			alloc(CategoryMess, 4000),
			alloc(CategoryCanteen, 1500),
			alloc(CategoryTravel, 1000),
			alloc(CategoryRentHostel, 5000),
			alloc(CategoryEducation, 1000),
			alloc(CategoryFeesExam, 1500),
			alloc(CategoryRecharge, 500),
			alloc(CategoryEntertainment, 1000),
			alloc(CategoryShopping, 1000),
			alloc(CategoryOthers, 500),
		},
	}
}
