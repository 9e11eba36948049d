package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one persisted chat turn. The human half and the bot half of
// an exchange are two records for the same UserId, ordered by CreatedAt.
type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Message   string
	Response  *string
	IsBot     bool
	CreatedAt time.Time
}
