package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecyclingCenterResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Website      string    `json:"website,omitempty"`
	AcceptsTypes string    `json:"accepts_types,omitempty"`
	Hours        string    `json:"hours,omitempty"`
	DistanceKm   *float64  `json:"distance_km,omitempty"`
}

type PickupScheduleResponse struct {
	Id                uuid.UUID `json:"id"`
	RecyclingCenterId uuid.UUID `json:"recycling_center_id"`
	Area              string    `json:"area"`
	PickupDay         string    `json:"pickup_day"`
	PickupTime        string    `json:"pickup_time"`
	WasteTypes        string    `json:"waste_types"`
	Frequency         string    `json:"frequency"`
	CreatedAt         time.Time `json:"created_at"`
}
