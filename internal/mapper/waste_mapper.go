package mapper

import (
	"time"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/model"
)

type WasteMapper struct{}

func NewWasteMapper() *WasteMapper {
	return &WasteMapper{}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	out := t
	return &out
}

func (m *WasteMapper) EntryToEntity(e *model.WasteEntry) *entity.WasteEntry {
	if e == nil {
		return nil
	}

	return &entity.WasteEntry{
		Id:                e.Id,
		UserId:            e.UserId,
		WasteType:         entity.WasteType(e.WasteType),
		WeightKg:          e.WeightKg,
		Description:       e.Description,
		DisposalDate:      e.DisposalDate,
		Recycled:          e.Recycled,
		RecyclingCenterId: e.RecyclingCenterId,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         optionalTime(e.UpdatedAt),
	}
}

func (m *WasteMapper) EntryToModel(e *entity.WasteEntry) *model.WasteEntry {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.WasteEntry{
		Id:                e.Id,
		UserId:            e.UserId,
		WasteType:         string(e.WasteType),
		WeightKg:          e.WeightKg,
		Description:       e.Description,
		DisposalDate:      e.DisposalDate,
		Recycled:          e.Recycled,
		RecyclingCenterId: e.RecyclingCenterId,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *WasteMapper) GoalToEntity(g *model.WasteGoal) *entity.WasteGoal {
	if g == nil {
		return nil
	}

	return &entity.WasteGoal{
		Id:           g.Id,
		UserId:       g.UserId,
		GoalType:     entity.GoalType(g.GoalType),
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
		IsCompleted:  g.IsCompleted,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    optionalTime(g.UpdatedAt),
	}
}

func (m *WasteMapper) GoalToModel(g *entity.WasteGoal) *model.WasteGoal {
	if g == nil {
		return nil
	}

	var updatedAt time.Time
	if g.UpdatedAt != nil {
		updatedAt = *g.UpdatedAt
	}

	return &model.WasteGoal{
		Id:           g.Id,
		UserId:       g.UserId,
		GoalType:     string(g.GoalType),
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
		IsCompleted:  g.IsCompleted,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *WasteMapper) AchievementToEntity(a *model.Achievement) *entity.Achievement {
	if a == nil {
		return nil
	}

	return &entity.Achievement{
		Id:              a.Id,
		UserId:          a.UserId,
		AchievementType: a.AchievementType,
		Title:           a.Title,
		Description:     a.Description,
		UnlockedAt:      a.UnlockedAt,
	}
}

func (m *WasteMapper) AchievementToModel(a *entity.Achievement) *model.Achievement {
	if a == nil {
		return nil
	}

	return &model.Achievement{
		Id:              a.Id,
		UserId:          a.UserId,
		AchievementType: a.AchievementType,
		Title:           a.Title,
		Description:     a.Description,
		UnlockedAt:      a.UnlockedAt,
	}
}
