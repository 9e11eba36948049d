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

type RecyclingCenterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecyclingMapper
}

func NewRecyclingCenterRepository(db *gorm.DB) contract.RecyclingCenterRepository {
	return &RecyclingCenterRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecyclingMapper(),
	}
}

func (r *RecyclingCenterRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecyclingCenterRepositoryImpl) Create(ctx context.Context, center *entity.RecyclingCenter) error {
	m := r.mapper.CenterToModel(center)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*center = *r.mapper.CenterToEntity(m)
	return nil
}

func (r *RecyclingCenterRepositoryImpl) Update(ctx context.Context, center *entity.RecyclingCenter) error {
	m := r.mapper.CenterToModel(center)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*center = *r.mapper.CenterToEntity(m)
	return nil
}

func (r *RecyclingCenterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RecyclingCenter, error) {
	var m model.RecyclingCenter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CenterToEntity(&m), nil
}

func (r *RecyclingCenterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecyclingCenter, error) {
	var models []model.RecyclingCenter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	centers := make([]*entity.RecyclingCenter, 0, len(models))
	for i := range models {
		centers = append(centers, r.mapper.CenterToEntity(&models[i]))
	}
	return centers, nil
}

func (r *RecyclingCenterRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RecyclingCenter{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
