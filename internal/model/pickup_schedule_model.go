package model

import (
	"time"

	"github.com/google/uuid"
)

type PickupSchedule struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecyclingCenterId uuid.UUID `gorm:"type:uuid;not null;index"`
	Area              string    `gorm:"type:varchar(200);not null"`
	PickupDay         string    `gorm:"type:varchar(20);not null"` // Monday, Tuesday, ...
	PickupTime        string    `gorm:"type:varchar(20)"`          // e.g. "09:00 AM"
	WasteTypes        string    `gorm:"type:varchar(255)"`
	Frequency         string    `gorm:"type:varchar(50);default:'weekly'"`
	IsActive          bool      `gorm:"default:true"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (PickupSchedule) TableName() string {
	return "pickup_schedules"
}
