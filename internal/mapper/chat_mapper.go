package mapper

import (
	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:        msg.Id,
		UserId:    msg.UserId,
		Message:   msg.Message,
		Response:  msg.Response,
		IsBot:     msg.IsBot,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:        msg.Id,
		UserId:    msg.UserId,
		Message:   msg.Message,
		Response:  msg.Response,
		IsBot:     msg.IsBot,
		CreatedAt: msg.CreatedAt,
	}
}
