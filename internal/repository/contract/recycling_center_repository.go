package contract

import (
	"context"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
)

type RecyclingCenterRepository interface {
	Create(ctx context.Context, center *entity.RecyclingCenter) error
	Update(ctx context.Context, center *entity.RecyclingCenter) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RecyclingCenter, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecyclingCenter, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
