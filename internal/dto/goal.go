package dto

import "time"

// CreateGoalRequest contains a new savings goal
type CreateGoalRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	TargetAmount float64   `json:"targetAmount" validate:"required,gt=0"`
	SavedAmount  float64   `json:"savedAmount" validate:"gte=0"`
	Deadline     time.Time `json:"deadline" validate:"required"`
	Icon         string    `json:"icon" validate:"max=50"`
	Color        string    `json:"color" validate:"omitempty,goal_color"`
}

// AddFundsRequest contains the amount to add to a goal's saved total
type AddFundsRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// GoalResponse is a single goal in API responses
type GoalResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	TargetAmount   float64    `json:"targetAmount"`
	SavedAmount    float64    `json:"savedAmount"`
	Deadline       time.Time  `json:"deadline"`
	Icon           string     `json:"icon,omitempty"`
	Color          string     `json:"color,omitempty"`
	LastFundedDate *time.Time `json:"lastFundedDate,omitempty"`
}

// ListGoalsResponse wraps a goal listing ordered by deadline ascending
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}
