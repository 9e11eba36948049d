package service

import (
	"context"
	"errors"
	"time"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	location   ILocationService
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, location ILocationService) IUserService {
	return &userService{uowFactory: uowFactory, location: location}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return userToResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if req.Username != "" && req.Username != user.Username {
		existing, _ := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
		if existing != nil && existing.Id != user.Id {
			return nil, errors.New("username already taken")
		}
		user.Username = req.Username
	}
	if req.City != "" {
		user.City = req.City
	}

	// A changed address invalidates the stored coordinates, so re-geocode.
	currentAddress := ""
	if user.Address != nil {
		currentAddress = *user.Address
	}
	if req.Address != "" && req.Address != currentAddress {
		addr := req.Address
		user.Address = &addr
		user.Latitude, user.Longitude = s.location.Resolve(ctx, req.Address)
	}

	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}
