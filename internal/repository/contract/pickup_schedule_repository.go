package contract

import (
	"context"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
)

type PickupScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.PickupSchedule) error
	Update(ctx context.Context, schedule *entity.PickupSchedule) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PickupSchedule, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PickupSchedule, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
