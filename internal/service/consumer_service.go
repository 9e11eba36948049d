package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/pkg/logger"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"
	"ecotrack-be/pkg/events"
	pktNats "ecotrack-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Event types placed on the NATS bus by the pipeline.
const (
	EventAchievementUnlocked = "ACHIEVEMENT_UNLOCKED"
	EventGoalAchieved        = "GOAL_ACHIEVED"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService recomputes achievements and goal progress whenever a
// waste entry is recorded or toggled.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.WasteEntryRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads would never succeed on retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.WasteEntryRepository().FindAll(ctx, specification.OwnedBy{UserID: payload.UserId})
	if err != nil {
		cs.logger.Error("Consumer", "Failed to load entries", map[string]interface{}{"user_id": payload.UserId, "error": err.Error()})
		msg.Nack()
		return
	}

	owned, err := uow.AchievementRepository().FindAll(ctx, specification.OwnedBy{UserID: payload.UserId})
	if err != nil {
		cs.logger.Error("Consumer", "Failed to load achievements", map[string]interface{}{"user_id": payload.UserId, "error": err.Error()})
		msg.Nack()
		return
	}
	ownedTypes := make(map[string]bool, len(owned))
	for _, a := range owned {
		ownedTypes[a.AchievementType] = true
	}

	goals, err := uow.WasteGoalRepository().FindAll(ctx, specification.OwnedBy{UserID: payload.UserId})
	if err != nil {
		cs.logger.Error("Consumer", "Failed to load goals", map[string]interface{}{"user_id": payload.UserId, "error": err.Error()})
		msg.Nack()
		return
	}

	unlocked := EvaluateAchievements(CollectEntryStats(entries), ownedTypes)

	var achievedGoals []*entity.WasteGoal
	var changedGoals []*entity.WasteGoal
	for _, g := range goals {
		changed, newlyAchieved := RecomputeGoalProgress(g, entries)
		if changed {
			changedGoals = append(changedGoals, g)
		}
		if newlyAchieved {
			achievedGoals = append(achievedGoals, g)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("Consumer", "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	now := time.Now().UTC()
	var newAchievements []*entity.Achievement
	for _, rule := range unlocked {
		achievement := &entity.Achievement{
			Id:              uuid.New(),
			UserId:          payload.UserId,
			AchievementType: rule.Type,
			Title:           rule.Title,
			Description:     rule.Description,
			UnlockedAt:      now,
		}
		if err := uow.AchievementRepository().Create(ctx, achievement); err != nil {
			cs.logger.Error("Consumer", "Failed to create achievement", map[string]interface{}{"type": rule.Type, "error": err.Error()})
			msg.Nack()
			return
		}
		newAchievements = append(newAchievements, achievement)
	}

	for _, g := range changedGoals {
		g.UpdatedAt = &now
		if err := uow.WasteGoalRepository().Update(ctx, g); err != nil {
			cs.logger.Error("Consumer", "Failed to update goal", map[string]interface{}{"goal_id": g.Id, "error": err.Error()})
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error("Consumer", "Failed to commit", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.publishEvents(ctx, payload.UserId, newAchievements, achievedGoals)
	msg.Ack()
}

func (cs *consumerService) publishEvents(ctx context.Context, userID uuid.UUID, achievements []*entity.Achievement, goals []*entity.WasteGoal) {
	if cs.eventPublisher == nil {
		return
	}

	for _, a := range achievements {
		event := events.BaseEvent{
			Type: EventAchievementUnlocked,
			Data: map[string]interface{}{
				"user_id":          userID.String(),
				"achievement_id":   a.Id.String(),
				"achievement_type": a.AchievementType,
				"title":            a.Title,
				"description":      a.Description,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			cs.logger.Warn("Consumer", "Failed to publish achievement event", map[string]interface{}{"error": err.Error()})
		}
	}

	for _, g := range goals {
		event := events.BaseEvent{
			Type: EventGoalAchieved,
			Data: map[string]interface{}{
				"user_id":      userID.String(),
				"goal_id":      g.Id.String(),
				"goal_type":    string(g.GoalType),
				"target_value": g.TargetValue,
				"unit":         g.Unit,
				"message":      goalAchievedMessage(g),
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			cs.logger.Warn("Consumer", "Failed to publish goal event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func goalAchievedMessage(g *entity.WasteGoal) string {
	switch g.GoalType {
	case entity.GoalTypeReduce:
		return fmt.Sprintf("You achieved your goal to reduce waste to %g %s!", g.TargetValue, g.Unit)
	case entity.GoalTypeRecycle:
		return fmt.Sprintf("You achieved your recycling goal of %g %s!", g.TargetValue, g.Unit)
	default:
		return fmt.Sprintf("You tracked %g waste entries!", g.TargetValue)
	}
}
