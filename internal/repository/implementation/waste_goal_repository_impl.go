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

type WasteGoalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WasteMapper
}

func NewWasteGoalRepository(db *gorm.DB) contract.WasteGoalRepository {
	return &WasteGoalRepositoryImpl{
		db:     db,
		mapper: mapper.NewWasteMapper(),
	}
}

func (r *WasteGoalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WasteGoalRepositoryImpl) Create(ctx context.Context, goal *entity.WasteGoal) error {
	m := r.mapper.GoalToModel(goal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*goal = *r.mapper.GoalToEntity(m)
	return nil
}

func (r *WasteGoalRepositoryImpl) Update(ctx context.Context, goal *entity.WasteGoal) error {
	m := r.mapper.GoalToModel(goal)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*goal = *r.mapper.GoalToEntity(m)
	return nil
}

func (r *WasteGoalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WasteGoal, error) {
	var m model.WasteGoal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.GoalToEntity(&m), nil
}

func (r *WasteGoalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WasteGoal, error) {
	var models []model.WasteGoal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	goals := make([]*entity.WasteGoal, 0, len(models))
	for i := range models {
		goals = append(goals, r.mapper.GoalToEntity(&models[i]))
	}
	return goals, nil
}
