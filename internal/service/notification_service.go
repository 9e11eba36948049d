package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ecotrack-be/internal/model"
	"ecotrack-be/internal/pkg/logger"
	"ecotrack-be/internal/repository"
	pktNats "ecotrack-be/pkg/nats"

	"ecotrack-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject carries the stream prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotificationService", "Processing event", map[string]interface{}{"type": typeCode})

	payload := event.Payload()
	uidStr, ok := payload["user_id"].(string)
	if !ok {
		s.logger.Warn("NotificationService", "Event has no user_id, skipping", map[string]interface{}{"type": typeCode})
		return nil
	}
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Event has invalid user_id, skipping", map[string]interface{}{"type": typeCode, "user_id": uidStr})
		return nil
	}

	var notif model.Notification
	switch typeCode {
	case EventAchievementUnlocked:
		title, _ := payload["title"].(string)
		description, _ := payload["description"].(string)
		notif = s.buildNotification(userID, "achievement", "🏆 Achievement Unlocked!",
			fmt.Sprintf("%s: %s", title, description), "/dashboard", payload)

	case EventGoalAchieved:
		message, _ := payload["message"].(string)
		notif = s.buildNotification(userID, "achievement", "Goal Achieved!", message, "/goals", payload)

	default:
		// Not every bus event becomes a notification.
		return nil
	}

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", "Error saving notification", map[string]interface{}{
			"user_id": userID,
			"error":   err,
		})
		return err // NATS will retry
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}
	return nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode, title, message, link string, payload map[string]interface{}) model.Notification {
	metaJSON, _ := json.Marshal(payload)
	return model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  typeCode,
		Title:     title,
		Message:   message,
		Link:      link,
		Metadata:  datatypes.JSON(metaJSON),
		IsRead:    false,
		CreatedAt: time.Now(),
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
