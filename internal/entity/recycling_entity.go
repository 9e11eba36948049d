package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecyclingCenter struct {
	Id           uuid.UUID
	Name         string
	Address      string
	City         string
	Latitude     float64
	Longitude    float64
	Phone        string
	Email        string
	Website      string
	AcceptsTypes string
	Hours        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type PickupSchedule struct {
	Id                uuid.UUID
	RecyclingCenterId uuid.UUID
	Area              string
	PickupDay         string
	PickupTime        string
	WasteTypes        string
	Frequency         string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
