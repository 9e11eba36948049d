package implementation

import (
	"context"
	"errors"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/mapper"
	"ecotrack-be/internal/model"
	"ecotrack-be/internal/repository/contract"
	"ecotrack-be/internal/repository/specification"

	"gorm.io/gorm"
)

type WasteEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WasteMapper
}

func NewWasteEntryRepository(db *gorm.DB) contract.WasteEntryRepository {
	return &WasteEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewWasteMapper(),
	}
}

func (r *WasteEntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WasteEntryRepositoryImpl) Create(ctx context.Context, entry *entity.WasteEntry) error {
	m := r.mapper.EntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.EntryToEntity(m)
	return nil
}

func (r *WasteEntryRepositoryImpl) Update(ctx context.Context, entry *entity.WasteEntry) error {
	m := r.mapper.EntryToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.EntryToEntity(m)
	return nil
}

func (r *WasteEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WasteEntry, error) {
	var m model.WasteEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EntryToEntity(&m), nil
}

func (r *WasteEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WasteEntry, error) {
	var models []model.WasteEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.WasteEntry, 0, len(models))
	for i := range models {
		entries = append(entries, r.mapper.EntryToEntity(&models[i]))
	}
	return entries, nil
}

func (r *WasteEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WasteEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
