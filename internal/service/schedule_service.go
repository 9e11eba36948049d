package service

import (
	"context"
	"strings"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"
)

type IScheduleService interface {
	ListSchedules(ctx context.Context, area, userCity string) ([]dto.PickupScheduleResponse, error)
}

type scheduleService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewScheduleService(uowFactory unitofwork.RepositoryFactory) IScheduleService {
	return &scheduleService{uowFactory: uowFactory}
}

// ListSchedules returns active schedules. An explicit ?area= filter wins;
// otherwise the caller's profile city narrows the list the way the original
// dashboard did.
func (s *scheduleService) ListSchedules(ctx context.Context, area, userCity string) ([]dto.PickupScheduleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ActiveOnly{},
		specification.OrderBy{Field: "pickup_day"},
	}
	if area != "" {
		specs = append(specs, specification.AreaContains{Area: area})
	}

	schedules, err := uow.PickupScheduleRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PickupScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		if area == "" && userCity != "" &&
			!strings.Contains(strings.ToLower(sched.Area), strings.ToLower(userCity)) {
			continue
		}
		out = append(out, dto.PickupScheduleResponse{
			Id:                sched.Id,
			RecyclingCenterId: sched.RecyclingCenterId,
			Area:              sched.Area,
			PickupDay:         sched.PickupDay,
			PickupTime:        sched.PickupTime,
			WasteTypes:        sched.WasteTypes,
			Frequency:         sched.Frequency,
			CreatedAt:         sched.CreatedAt,
		})
	}
	return out, nil
}
