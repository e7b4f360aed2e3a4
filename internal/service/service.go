package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type CarService interface {
	CreateCar(ctx context.Context, model string, category domain.CarCategory) (*domain.Car, error)
	GetCar(ctx context.Context, id string) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListAvailableCars(ctx context.Context) ([]domain.Car, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, name, email string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

type RentalService interface {
	RentCar(ctx context.Context, customerID, carID string, days int) (*domain.Rental, error)
	ReturnCar(ctx context.Context, rentalID string, returnDate time.Time) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListCustomerRentals(ctx context.Context, customerID string) ([]*domain.Rental, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, email, name, carModel string, price domain.Money, expectedReturn time.Time) error
	SendOverdueReminder(ctx context.Context, email, name, carModel string, daysLate int, projectedSurcharge domain.Money) error
}
