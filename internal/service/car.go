package service

import (
	"context"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) CreateCar(ctx context.Context, model string, category domain.CarCategory) (*domain.Car, error) {
	car, err := domain.NewCar(uuid.NewString(), model, category)
	if err != nil {
		return nil, err
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	logger.Info("Car added to fleet", "car_id", car.ID, "model", model, "category", category)
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) ListAvailableCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListAvailable(ctx)
}
