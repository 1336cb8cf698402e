package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal colors map to the client's chart palette
const (
	GoalColorChart1 = "chart-1"
	GoalColorChart2 = "chart-2"
	GoalColorChart3 = "chart-3"
	GoalColorChart4 = "chart-4"
	GoalColorChart5 = "chart-5"
)

// Goal is a savings goal. SavedAmount only ever grows, through the atomic
// add-funds operation; LastFundedDate records the most recent funding and
// feeds the consistency component of the health score.
type Goal struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"targetAmount"`
	SavedAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"savedAmount"`
	Deadline       time.Time       `gorm:"not null;index" json:"deadline"`
	Icon           string          `gorm:"type:varchar(50)" json:"icon"`
	Color          string          `gorm:"type:varchar(20)" json:"color"`
	LastFundedDate *time.Time      `json:"lastFundedDate,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

func (g *Goal) Validate() error {
	if g.Name == "" {
		return errors.New("goal name is required")
	}

	if !g.TargetAmount.IsPositive() {
		return errors.New("target amount must be greater than zero")
	}

	if g.SavedAmount.IsNegative() {
		return errors.New("saved amount must not be negative")
	}

	if g.Deadline.IsZero() {
		return errors.New("deadline is required")
	}

	return nil
}

// Progress returns the funded fraction of the target in [0,1].
func (g *Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	ratio := g.SavedAmount.Div(g.TargetAmount)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return ratio
}

func (g *Goal) TableName() string {
	return "goals"
}
