package entity

import (
	"time"

	"github.com/google/uuid"
)

type WasteType string

const (
	WasteTypeOrganic    WasteType = "organic"
	WasteTypeRecyclable WasteType = "recyclable"
	WasteTypeHazardous  WasteType = "hazardous"
	WasteTypeOther      WasteType = "other"
)

func (t WasteType) Valid() bool {
	switch t {
	case WasteTypeOrganic, WasteTypeRecyclable, WasteTypeHazardous, WasteTypeOther:
		return true
	}
	return false
}

type WasteEntry struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	WasteType         WasteType
	WeightKg          *float64
	Description       string
	DisposalDate      time.Time
	Recycled          bool
	RecyclingCenterId *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Weight returns the entry weight, treating a null weight as zero the way
// the statistics aggregation does.
func (e *WasteEntry) Weight() float64 {
	if e.WeightKg == nil {
		return 0
	}
	return *e.WeightKg
}

type GoalType string

const (
	GoalTypeReduce  GoalType = "reduce"
	GoalTypeRecycle GoalType = "recycle"
	GoalTypeTrack   GoalType = "track"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeReduce, GoalTypeRecycle, GoalTypeTrack:
		return true
	}
	return false
}

type WasteGoal struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	GoalType     GoalType
	TargetValue  float64
	CurrentValue float64
	Unit         string
	StartDate    *time.Time
	EndDate      *time.Time
	IsCompleted  bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type Achievement struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	AchievementType string
	Title           string
	Description     string
	UnlockedAt      time.Time
}
