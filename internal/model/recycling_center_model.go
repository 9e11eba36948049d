package model

import (
	"time"

	"github.com/google/uuid"
)

type RecyclingCenter struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Address      string    `gorm:"type:varchar(255);not null"`
	City         string    `gorm:"type:varchar(100);not null;default:'Kathmandu'"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	Email        string    `gorm:"type:varchar(120)"`
	Website      string    `gorm:"type:varchar(255)"`
	AcceptsTypes string    `gorm:"type:varchar(255)"` // comma-separated waste types
	Hours        string    `gorm:"type:varchar(100)"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (RecyclingCenter) TableName() string {
	return "recycling_centers"
}
