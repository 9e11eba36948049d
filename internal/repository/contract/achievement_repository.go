package contract

import (
	"context"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
)

type AchievementRepository interface {
	Create(ctx context.Context, achievement *entity.Achievement) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Achievement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Achievement, error)
}
