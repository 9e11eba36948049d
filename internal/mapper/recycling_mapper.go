package mapper

import (
	"time"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/model"
)

type RecyclingMapper struct{}

func NewRecyclingMapper() *RecyclingMapper {
	return &RecyclingMapper{}
}

func (m *RecyclingMapper) CenterToEntity(c *model.RecyclingCenter) *entity.RecyclingCenter {
	if c == nil {
		return nil
	}

	return &entity.RecyclingCenter{
		Id:           c.Id,
		Name:         c.Name,
		Address:      c.Address,
		City:         c.City,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Phone:        c.Phone,
		Email:        c.Email,
		Website:      c.Website,
		AcceptsTypes: c.AcceptsTypes,
		Hours:        c.Hours,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    optionalTime(c.UpdatedAt),
	}
}

func (m *RecyclingMapper) CenterToModel(c *entity.RecyclingCenter) *model.RecyclingCenter {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.RecyclingCenter{
		Id:           c.Id,
		Name:         c.Name,
		Address:      c.Address,
		City:         c.City,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Phone:        c.Phone,
		Email:        c.Email,
		Website:      c.Website,
		AcceptsTypes: c.AcceptsTypes,
		Hours:        c.Hours,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *RecyclingMapper) ScheduleToEntity(s *model.PickupSchedule) *entity.PickupSchedule {
	if s == nil {
		return nil
	}

	return &entity.PickupSchedule{
		Id:                s.Id,
		RecyclingCenterId: s.RecyclingCenterId,
		Area:              s.Area,
		PickupDay:         s.PickupDay,
		PickupTime:        s.PickupTime,
		WasteTypes:        s.WasteTypes,
		Frequency:         s.Frequency,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         optionalTime(s.UpdatedAt),
	}
}

func (m *RecyclingMapper) ScheduleToModel(s *entity.PickupSchedule) *model.PickupSchedule {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.PickupSchedule{
		Id:                s.Id,
		RecyclingCenterId: s.RecyclingCenterId,
		Area:              s.Area,
		PickupDay:         s.PickupDay,
		PickupTime:        s.PickupTime,
		WasteTypes:        s.WasteTypes,
		Frequency:         s.Frequency,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}
