package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWasteEntryRequest struct {
	WasteType         string     `json:"waste_type" validate:"required,oneof=organic recyclable hazardous other"`
	WeightKg          *float64   `json:"weight_kg" validate:"omitempty,gt=0"`
	Description       string     `json:"description,omitempty"`
	DisposalDate      *time.Time `json:"disposal_date,omitempty"`
	Recycled          *bool      `json:"recycled,omitempty"`
	RecyclingCenterId *uuid.UUID `json:"recycling_center_id,omitempty"`
}

type WasteEntryResponse struct {
	Id                uuid.UUID  `json:"id"`
	WasteType         string     `json:"waste_type"`
	WeightKg          *float64   `json:"weight_kg"`
	Description       string     `json:"description,omitempty"`
	DisposalDate      time.Time  `json:"disposal_date"`
	Recycled          bool       `json:"recycled"`
	RecyclingCenterId *uuid.UUID `json:"recycling_center_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type ListWasteEntriesResponse struct {
	Entries []WasteEntryResponse `json:"entries"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
}

type CreateWasteGoalRequest struct {
	GoalType    string     `json:"goal_type" validate:"required,oneof=reduce recycle track"`
	TargetValue float64    `json:"target_value" validate:"required,gt=0"`
	Unit        string     `json:"unit,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type WasteGoalResponse struct {
	Id           uuid.UUID  `json:"id"`
	GoalType     string     `json:"goal_type"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsCompleted  bool       `json:"is_completed"`
	Progress     float64    `json:"progress"`
	CreatedAt    time.Time  `json:"created_at"`
}

type AchievementResponse struct {
	Id              uuid.UUID `json:"id"`
	AchievementType string    `json:"achievement_type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	UnlockedAt      time.Time `json:"unlocked_at"`
}
