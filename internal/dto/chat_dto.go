package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Response  *string   `json:"response,omitempty"`
	IsBot     bool      `json:"is_bot"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Total    int64                 `json:"total"`
}
