package unitofwork

import (
	"context"

	"ecotrack-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WasteEntryRepository() contract.WasteEntryRepository
	WasteGoalRepository() contract.WasteGoalRepository
	AchievementRepository() contract.AchievementRepository
	RecyclingCenterRepository() contract.RecyclingCenterRepository
	PickupScheduleRepository() contract.PickupScheduleRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
