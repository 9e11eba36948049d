package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=80"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
}
