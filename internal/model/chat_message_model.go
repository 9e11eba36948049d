package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one chat turn. A human message and the bot reply it
// produced are stored as two consecutive rows for the same user: the human
// row carries Message with a null Response, the bot row carries the computed
// Response with IsBot set. Rows are never updated after creation.
type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_user_created,priority:1"`
	Message   string    `gorm:"type:text;not null"`
	Response  *string   `gorm:"type:text"`
	IsBot     bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_chat_messages_user_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
