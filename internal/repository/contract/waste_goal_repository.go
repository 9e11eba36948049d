package contract

import (
	"context"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
)

type WasteGoalRepository interface {
	Create(ctx context.Context, goal *entity.WasteGoal) error
	Update(ctx context.Context, goal *entity.WasteGoal) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WasteGoal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WasteGoal, error)
}
