package contract

import (
	"context"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
)

// ChatMessageRepository is the append-only store for chat turns. Create is a
// single atomic insert; there are no update or delete operations. Listing
// must be ordered by creation time to reproduce the conversation.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
