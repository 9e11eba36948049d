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

type AchievementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WasteMapper
}

func NewAchievementRepository(db *gorm.DB) contract.AchievementRepository {
	return &AchievementRepositoryImpl{
		db:     db,
		mapper: mapper.NewWasteMapper(),
	}
}

func (r *AchievementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AchievementRepositoryImpl) Create(ctx context.Context, achievement *entity.Achievement) error {
	m := r.mapper.AchievementToModel(achievement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*achievement = *r.mapper.AchievementToEntity(m)
	return nil
}

func (r *AchievementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Achievement, error) {
	var m model.Achievement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AchievementToEntity(&m), nil
}

func (r *AchievementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Achievement, error) {
	var models []model.Achievement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	achievements := make([]*entity.Achievement, 0, len(models))
	for i := range models {
		achievements = append(achievements, r.mapper.AchievementToEntity(&models[i]))
	}
	return achievements, nil
}
