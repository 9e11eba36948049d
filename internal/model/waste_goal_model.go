package model

import (
	"time"

	"github.com/google/uuid"
)

type WasteGoal struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	GoalType     string    `gorm:"type:varchar(50);not null"` // reduce, recycle, track
	TargetValue  float64   `gorm:"not null"`
	CurrentValue float64   `gorm:"default:0"`
	Unit         string    `gorm:"type:varchar(20);default:'kg'"`
	StartDate    *time.Time
	EndDate      *time.Time
	IsCompleted  bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (WasteGoal) TableName() string {
	return "waste_goals"
}
