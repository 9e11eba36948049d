package contract

import (
	"context"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
)

type WasteEntryRepository interface {
	Create(ctx context.Context, entry *entity.WasteEntry) error
	Update(ctx context.Context, entry *entity.WasteEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WasteEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WasteEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
