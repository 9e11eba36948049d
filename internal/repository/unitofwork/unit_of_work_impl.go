package unitofwork

import (
	"context"
	"fmt"

	"ecotrack-be/internal/repository/contract"
	"ecotrack-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // the active transaction, nil when operating outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WasteEntryRepository() contract.WasteEntryRepository {
	return implementation.NewWasteEntryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WasteGoalRepository() contract.WasteGoalRepository {
	return implementation.NewWasteGoalRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AchievementRepository() contract.AchievementRepository {
	return implementation.NewAchievementRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RecyclingCenterRepository() contract.RecyclingCenterRepository {
	return implementation.NewRecyclingCenterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PickupScheduleRepository() contract.PickupScheduleRepository {
	return implementation.NewPickupScheduleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}
