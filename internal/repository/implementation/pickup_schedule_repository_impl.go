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

type PickupScheduleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecyclingMapper
}

func NewPickupScheduleRepository(db *gorm.DB) contract.PickupScheduleRepository {
	return &PickupScheduleRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecyclingMapper(),
	}
}

func (r *PickupScheduleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PickupScheduleRepositoryImpl) Create(ctx context.Context, schedule *entity.PickupSchedule) error {
	m := r.mapper.ScheduleToModel(schedule)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*schedule = *r.mapper.ScheduleToEntity(m)
	return nil
}

func (r *PickupScheduleRepositoryImpl) Update(ctx context.Context, schedule *entity.PickupSchedule) error {
	m := r.mapper.ScheduleToModel(schedule)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*schedule = *r.mapper.ScheduleToEntity(m)
	return nil
}

func (r *PickupScheduleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PickupSchedule, error) {
	var m model.PickupSchedule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ScheduleToEntity(&m), nil
}

func (r *PickupScheduleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PickupSchedule, error) {
	var models []model.PickupSchedule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	schedules := make([]*entity.PickupSchedule, 0, len(models))
	for i := range models {
		schedules = append(schedules, r.mapper.ScheduleToEntity(&models[i]))
	}
	return schedules, nil
}

func (r *PickupScheduleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PickupSchedule{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
