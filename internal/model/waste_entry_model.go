package model

import (
	"time"

	"github.com/google/uuid"
)

type WasteEntry struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;index"`
	WasteType         string    `gorm:"type:varchar(50);not null"`
	WeightKg          *float64
	Description       string     `gorm:"type:text"`
	DisposalDate      time.Time  `gorm:"not null;index"`
	Recycled          bool       `gorm:"default:false"`
	RecyclingCenterId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (WasteEntry) TableName() string {
	return "waste_entries"
}
