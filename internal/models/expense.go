package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending record. Expenses are immutable once created:
// they are appended by user action and never mutated afterwards.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Date        time.Time       `gorm:"not null" json:"date"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.Description == "" {
		return errors.New("description is required")
	}

	if !e.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}

	if !IsValidCategory(e.Category) {
		return fmt.Errorf("invalid category: %s", e.Category)
	}

	return nil
}

func (e *Expense) TableName() string {
	return "expenses"
}
