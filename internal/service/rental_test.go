package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

func newRentalFixture() (*MockRentalRepo, *MockCarRepo, *MockCustomerRepo, *MockEmailService, service.RentalService) {
	rentalRepo := new(MockRentalRepo)
	carRepo := new(MockCarRepo)
	customerRepo := new(MockCustomerRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewRentalService(rentalRepo, carRepo, customerRepo, pricing.NewEngine(), emailSvc)
	return rentalRepo, carRepo, customerRepo, emailSvc, svc
}

func availableCar(category domain.CarCategory) *domain.Car {
	return &domain.Car{ID: "car-1", Model: "Test Car", Category: category, Status: domain.CarStatusAvailable}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{ID: "customer-1", Name: "Alex", Email: "alex@example.com"}
}

func mustMoney(t *testing.T, cents int64) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestRentalService_RentCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo, carRepo, customerRepo, emailSvc, svc := newRentalFixture()
		car := availableCar(domain.CategorySUV)
		customer := testCustomer()

		carRepo.On("GetByID", ctx, "car-1").Return(car, nil)
		customerRepo.On("GetByID", ctx, "customer-1").Return(customer, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		carRepo.On("Update", ctx, car).Return(nil)
		customerRepo.On("Update", ctx, customer).Return(nil)
		emailSvc.On("SendRentalConfirmation", ctx, "alex@example.com", "Alex", "Test Car",
			mock.AnythingOfType("domain.Money"), mock.AnythingOfType("time.Time")).Return(nil)

		rental, err := svc.RentCar(ctx, "customer-1", "car-1", 5)
		require.NoError(t, err)

		assert.NotEmpty(t, rental.ID())
		assert.Equal(t, "customer-1", rental.CustomerID())
		assert.Equal(t, "car-1", rental.CarID())
		assert.Equal(t, int64(750_00), rental.RentalPrice().Cents())
		assert.Equal(t, 3, rental.LoyaltyPointsEarned())
		assert.False(t, rental.IsReturned())

		// Side effects: car held, loyalty points credited.
		assert.Equal(t, domain.CarStatusRented, car.Status)
		assert.Equal(t, 3, customer.LoyaltyPoints)

		rentalRepo.AssertExpectations(t)
		carRepo.AssertExpectations(t)
		customerRepo.AssertExpectations(t)
	})

	t.Run("Car not found", func(t *testing.T) {
		_, carRepo, _, _, svc := newRentalFixture()
		carRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound("car", "missing"))

		_, err := svc.RentCar(ctx, "customer-1", "missing", 5)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("Car not available", func(t *testing.T) {
		_, carRepo, _, _, svc := newRentalFixture()
		car := availableCar(domain.CategoryPremium)
		car.MarkRented()
		carRepo.On("GetByID", ctx, "car-1").Return(car, nil)

		_, err := svc.RentCar(ctx, "customer-1", "car-1", 5)
		assert.True(t, domain.IsKind(err, domain.KindResourceUnavailable))
	})

	t.Run("Customer not found", func(t *testing.T) {
		_, carRepo, customerRepo, _, svc := newRentalFixture()
		carRepo.On("GetByID", ctx, "car-1").Return(availableCar(domain.CategorySmall), nil)
		customerRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound("customer", "missing"))

		_, err := svc.RentCar(ctx, "missing", "car-1", 5)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("Non-positive day count", func(t *testing.T) {
		rentalRepo, carRepo, customerRepo, _, svc := newRentalFixture()
		carRepo.On("GetByID", ctx, "car-1").Return(availableCar(domain.CategorySmall), nil)
		customerRepo.On("GetByID", ctx, "customer-1").Return(testCustomer(), nil)

		_, err := svc.RentCar(ctx, "customer-1", "car-1", 0)
		assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Confirmation email failure does not fail the rental", func(t *testing.T) {
		rentalRepo, carRepo, customerRepo, emailSvc, svc := newRentalFixture()
		car := availableCar(domain.CategorySmall)
		customer := testCustomer()

		carRepo.On("GetByID", ctx, "car-1").Return(car, nil)
		customerRepo.On("GetByID", ctx, "customer-1").Return(customer, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		carRepo.On("Update", ctx, car).Return(nil)
		customerRepo.On("Update", ctx, customer).Return(nil)
		emailSvc.On("SendRentalConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything).Return(assert.AnError)

		rental, err := svc.RentCar(ctx, "customer-1", "car-1", 3)
		require.NoError(t, err)
		assert.Equal(t, int64(150_00), rental.RentalPrice().Cents())
	})
}

func TestRentalService_ReturnCar(t *testing.T) {
	ctx := context.Background()
	rentalDate := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	expected := rentalDate.AddDate(0, 0, 5)

	activeRental := func(t *testing.T) *domain.Rental {
		rental, err := domain.NewRental("rental-1", "customer-1", "car-1", rentalDate, expected, mustMoney(t, 750_00), 3)
		require.NoError(t, err)
		return rental
	}

	t.Run("On-time return has no surcharge", func(t *testing.T) {
		rentalRepo, carRepo, _, _, svc := newRentalFixture()
		rental := activeRental(t)
		car := availableCar(domain.CategorySUV)
		car.MarkRented()

		rentalRepo.On("GetByID", ctx, "rental-1").Return(rental, nil)
		carRepo.On("GetByID", ctx, "car-1").Return(car, nil)
		rentalRepo.On("Update", ctx, rental).Return(nil)
		carRepo.On("Update", ctx, car).Return(nil)

		returned, err := svc.ReturnCar(ctx, "rental-1", expected)
		require.NoError(t, err)

		assert.True(t, returned.IsReturned())
		assert.True(t, returned.SurchargePrice().IsZero())
		assert.Equal(t, domain.CarStatusAvailable, car.Status)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("Three days late charges the SUV surcharge", func(t *testing.T) {
		rentalRepo, carRepo, _, _, svc := newRentalFixture()
		rental := activeRental(t)
		car := availableCar(domain.CategorySUV)
		car.MarkRented()

		rentalRepo.On("GetByID", ctx, "rental-1").Return(rental, nil)
		carRepo.On("GetByID", ctx, "car-1").Return(car, nil)
		rentalRepo.On("Update", ctx, rental).Return(nil)
		carRepo.On("Update", ctx, car).Return(nil)

		returned, err := svc.ReturnCar(ctx, "rental-1", expected.AddDate(0, 0, 3))
		require.NoError(t, err)

		assert.Equal(t, int64(540_00), returned.SurchargePrice().Cents())
		assert.Equal(t, 3, returned.DaysLate())
		assert.Equal(t, int64(1290_00), returned.TotalPrice().Cents())
	})

	t.Run("Less than a whole day late charges nothing", func(t *testing.T) {
		rentalRepo, carRepo, _, _, svc := newRentalFixture()
		rental := activeRental(t)
		car := availableCar(domain.CategorySmall)
		car.MarkRented()

		rentalRepo.On("GetByID", ctx, "rental-1").Return(rental, nil)
		carRepo.On("GetByID", ctx, "car-1").Return(car, nil)
		rentalRepo.On("Update", ctx, rental).Return(nil)
		carRepo.On("Update", ctx, car).Return(nil)

		returned, err := svc.ReturnCar(ctx, "rental-1", expected.Add(10*time.Hour))
		require.NoError(t, err)
		assert.True(t, returned.SurchargePrice().IsZero())
	})

	t.Run("Already returned", func(t *testing.T) {
		rentalRepo, carRepo, _, _, svc := newRentalFixture()
		rental := activeRental(t)
		require.NoError(t, rental.Return(expected, domain.Zero()))

		rentalRepo.On("GetByID", ctx, "rental-1").Return(rental, nil)

		_, err := svc.ReturnCar(ctx, "rental-1", expected.AddDate(0, 0, 1))
		assert.True(t, domain.IsKind(err, domain.KindBusinessRule))
		carRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Rental not found", func(t *testing.T) {
		rentalRepo, _, _, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound("rental", "missing"))

		_, err := svc.ReturnCar(ctx, "missing", expected)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("Return before rental date fails", func(t *testing.T) {
		rentalRepo, carRepo, _, _, svc := newRentalFixture()
		rental := activeRental(t)
		car := availableCar(domain.CategorySUV)

		rentalRepo.On("GetByID", ctx, "rental-1").Return(rental, nil)
		carRepo.On("GetByID", ctx, "car-1").Return(car, nil)

		_, err := svc.ReturnCar(ctx, "rental-1", rentalDate.AddDate(0, 0, -1))
		assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
		assert.False(t, rental.IsReturned())
		rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestRentalService_ListCustomerRentals(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo, _, customerRepo, _, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, "customer-1").Return(testCustomer(), nil)
		rentalRepo.On("ListByCustomer", ctx, "customer-1").Return([]*domain.Rental{}, nil)

		rentals, err := svc.ListCustomerRentals(ctx, "customer-1")
		assert.NoError(t, err)
		assert.Empty(t, rentals)
	})

	t.Run("Unknown customer", func(t *testing.T) {
		_, _, customerRepo, _, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound("customer", "missing"))

		_, err := svc.ListCustomerRentals(ctx, "missing")
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}
