package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	pricing      *pricing.Engine
	emailSvc     EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	pricingEngine *pricing.Engine,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		pricing:      pricingEngine,
		emailSvc:     emailSvc,
	}
}

// RentCar creates an active rental: price and loyalty points come from the
// pricing engine, the car is taken out of the fleet, the customer is credited.
func (s *rentalService) RentCar(ctx context.Context, customerID, carID string, days int) (*domain.Rental, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !car.IsAvailable() {
		return nil, domain.ErrResourceUnavailable("car %s is not available for rental", carID)
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	price, err := s.pricing.CalculateRentalPrice(car.Category, days)
	if err != nil {
		return nil, err
	}
	points, err := s.pricing.GetLoyaltyPoints(car.Category)
	if err != nil {
		return nil, err
	}

	rentalDate := time.Now()
	expectedReturn := rentalDate.AddDate(0, 0, days)

	rental, err := domain.NewRental(uuid.NewString(), customerID, carID, rentalDate, expectedReturn, price, points)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	car.MarkRented()
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	if err := customer.AddLoyaltyPoints(points); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendRentalConfirmation(ctx, customer.Email, customer.Name, car.Model, price, expectedReturn); err != nil {
		logger.Warn("Failed to send rental confirmation", "rental_id", rental.ID(), "error", err)
	}

	logger.Info("Car rented", "rental_id", rental.ID(), "car_id", carID, "customer_id", customerID,
		"days", days, "price_cents", price.Cents(), "loyalty_points", points)
	return rental, nil
}

// ReturnCar processes a return: surcharge is computed for whole days past the
// expected return date, the rental latches to Returned, the car is released.
func (s *rentalService) ReturnCar(ctx context.Context, rentalID string, returnDate time.Time) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.IsReturned() {
		return nil, domain.ErrBusinessRule("rental %s has already been returned", rentalID)
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID())
	if err != nil {
		return nil, err
	}

	surcharge := domain.Zero()
	if returnDate.After(rental.ExpectedReturnDate()) {
		// Whole days only; a sub-day late return charges nothing.
		extraDays := int(returnDate.Sub(rental.ExpectedReturnDate()).Hours() / 24)
		if extraDays >= 1 {
			surcharge, err = s.pricing.CalculateSurchargePrice(car.Category, extraDays)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := rental.Return(returnDate, surcharge); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	car.MarkAvailable()
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	logger.Info("Car returned", "rental_id", rentalID, "car_id", car.ID,
		"days_late", rental.DaysLate(), "surcharge_cents", surcharge.Cents())
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListCustomerRentals(ctx context.Context, customerID string) ([]*domain.Rental, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.rentalRepo.ListByCustomer(ctx, customerID)
}
