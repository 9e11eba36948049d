package model

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index:idx_achievements_user_type,priority:1"`
	AchievementType string    `gorm:"type:varchar(100);not null;index:idx_achievements_user_type,priority:2"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text"`
	UnlockedAt      time.Time `gorm:"autoCreateTime"`
}

func (Achievement) TableName() string {
	return "achievements"
}
