package service

import (
	"context"
	"time"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/pkg/logger"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"
	"ecotrack-be/pkg/chatbot"

	"github.com/google/uuid"
)

type IChatService interface {
	HandleMessage(ctx context.Context, userID uuid.UUID, message string) (response string, timestamp time.Time, err error)
	GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	responder  *chatbot.Responder
	logger     logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, responder *chatbot.Responder, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		responder:  responder,
		logger:     log,
	}
}

// HandleMessage stores the human turn, computes the reply, stores the bot
// turn, and returns the reply. A storage failure is logged as a warning but
// never withholds the reply; there is no retry.
func (s *chatService) HandleMessage(ctx context.Context, userID uuid.UUID, message string) (string, time.Time, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatMessageRepository()
	now := time.Now().UTC()

	human := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userID,
		Message:   message,
		IsBot:     false,
		CreatedAt: now,
	}
	if err := repo.Create(ctx, human); err != nil {
		s.logger.Warn("Chat", "Failed to store human message", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	response := s.responder.Respond(message)

	bot := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userID,
		Message:   message,
		Response:  &response,
		IsBot:     true,
		// Nudged past the human record so ORDER BY created_at keeps the
		// pair in human-then-bot order.
		CreatedAt: now.Add(time.Millisecond),
	}
	if err := repo.Create(ctx, bot); err != nil {
		s.logger.Warn("Chat", "Failed to store bot message", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	return response, now, nil
}

func (s *chatService) GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatMessageRepository()

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	total, err := repo.Count(ctx, specification.OwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}

	messages, err := repo.FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "created_at"},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	out := &dto.ChatHistoryResponse{
		Messages: make([]dto.ChatMessageResponse, 0, len(messages)),
		Total:    total,
	}
	for _, m := range messages {
		out.Messages = append(out.Messages, dto.ChatMessageResponse{
			Id:        m.Id,
			Message:   m.Message,
			Response:  m.Response,
			IsBot:     m.IsBot,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
