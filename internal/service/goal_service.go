package service

import (
	"context"
	"fmt"
	"time"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IGoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, req *dto.CreateWasteGoalRequest) (*dto.WasteGoalResponse, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]dto.WasteGoalResponse, error)
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]dto.AchievementResponse, error)
}

type goalService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGoalService(uowFactory unitofwork.RepositoryFactory) IGoalService {
	return &goalService{uowFactory: uowFactory}
}

func goalToResponse(g *entity.WasteGoal) dto.WasteGoalResponse {
	return dto.WasteGoalResponse{
		Id:           g.Id,
		GoalType:     string(g.GoalType),
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
		IsCompleted:  g.IsCompleted,
		Progress:     GoalProgressPercent(g),
		CreatedAt:    g.CreatedAt,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, req *dto.CreateWasteGoalRequest) (*dto.WasteGoalResponse, error) {
	goalType := entity.GoalType(req.GoalType)
	if !goalType.Valid() {
		return nil, fmt.Errorf("invalid goal type: %s", req.GoalType)
	}
	if req.TargetValue <= 0 {
		return nil, fmt.Errorf("target value must be positive")
	}

	unit := req.Unit
	if unit == "" {
		unit = "kg"
	}

	startDate := req.StartDate
	if startDate == nil {
		now := time.Now().UTC()
		startDate = &now
	}

	goal := &entity.WasteGoal{
		Id:          uuid.New(),
		UserId:      userID,
		GoalType:    goalType,
		TargetValue: req.TargetValue,
		Unit:        unit,
		StartDate:   startDate,
		EndDate:     req.EndDate,
		CreatedAt:   time.Now().UTC(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WasteGoalRepository().Create(ctx, goal); err != nil {
		return nil, err
	}

	resp := goalToResponse(goal)
	return &resp, nil
}

// ListGoals recomputes each goal's progress from current entries before
// returning it, so the read is always accurate even if the async pipeline
// lags.
func (s *goalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]dto.WasteGoalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	goals, err := uow.WasteGoalRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	entries, err := uow.WasteEntryRepository().FindAll(ctx, specification.OwnedBy{UserID: userID})
	if err != nil {
		return nil, err
	}

	out := make([]dto.WasteGoalResponse, 0, len(goals))
	for _, g := range goals {
		if changed, _ := RecomputeGoalProgress(g, entries); changed {
			now := time.Now().UTC()
			g.UpdatedAt = &now
			if err := uow.WasteGoalRepository().Update(ctx, g); err != nil {
				return nil, err
			}
		}
		out = append(out, goalToResponse(g))
	}
	return out, nil
}

func (s *goalService) ListAchievements(ctx context.Context, userID uuid.UUID) ([]dto.AchievementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	achievements, err := uow.AchievementRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userID},
		specification.OrderBy{Field: "unlocked_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, dto.AchievementResponse{
			Id:              a.Id,
			AchievementType: a.AchievementType,
			Title:           a.Title,
			Description:     a.Description,
			UnlockedAt:      a.UnlockedAt,
		})
	}
	return out, nil
}
