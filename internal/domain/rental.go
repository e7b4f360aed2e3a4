package domain

import (
	"strings"
	"time"
)

// Rental is the lifecycle entity of a single hire: created Active by the rent
// workflow, moved to Returned exactly once by the return workflow. Fields are
// unexported so the factory and the Return transition are the only mutation
// paths.
type Rental struct {
	id                  string
	customerID          string
	carID               string
	rentalDate          time.Time
	expectedReturnDate  time.Time
	actualReturnDate    *time.Time
	rentalPrice         Money
	surchargePrice      Money
	loyaltyPointsEarned int
	returned            bool
}

// NewRental creates a rental in Active state. The price and loyalty points are
// injected by the caller (computed by the pricing engine) and are immutable
// afterwards.
func NewRental(id, customerID, carID string, rentalDate, expectedReturnDate time.Time, rentalPrice Money, loyaltyPoints int) (*Rental, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidArgument("rental id cannot be empty")
	}
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrInvalidArgument("customer id cannot be empty")
	}
	if strings.TrimSpace(carID) == "" {
		return nil, ErrInvalidArgument("car id cannot be empty")
	}
	if !expectedReturnDate.After(rentalDate) {
		return nil, ErrInvalidArgument("expected return date must be after the rental date")
	}
	if loyaltyPoints < 0 {
		return nil, ErrInvalidArgument("loyalty points cannot be negative: %d", loyaltyPoints)
	}
	return &Rental{
		id:                  id,
		customerID:          customerID,
		carID:               carID,
		rentalDate:          rentalDate,
		expectedReturnDate:  expectedReturnDate,
		rentalPrice:         rentalPrice,
		surchargePrice:      Zero(),
		loyaltyPointsEarned: loyaltyPoints,
	}, nil
}

// Return transitions the rental to its terminal Returned state. The guards
// fail without mutating the entity, so a rejected return leaves it unchanged.
func (r *Rental) Return(returnDate time.Time, surcharge Money) error {
	if r.returned {
		return ErrInvalidState("rental %s has already been returned", r.id)
	}
	if returnDate.Before(r.rentalDate) {
		return ErrInvalidArgument("return date cannot be before the rental date")
	}
	actual := returnDate
	r.actualReturnDate = &actual
	r.surchargePrice = surcharge
	r.returned = true
	return nil
}

// IsLate reports whether the rental was returned after its expected date.
func (r *Rental) IsLate() bool {
	return r.actualReturnDate != nil && r.actualReturnDate.After(r.expectedReturnDate)
}

// DaysLate returns the whole days between the expected and actual return
// dates when late, truncated toward zero, else 0.
func (r *Rental) DaysLate() int {
	if !r.IsLate() {
		return 0
	}
	return int(r.actualReturnDate.Sub(r.expectedReturnDate).Hours() / 24)
}

// TotalPrice is the rental price plus any late surcharge.
func (r *Rental) TotalPrice() Money {
	return r.rentalPrice.Add(r.surchargePrice)
}

func (r *Rental) ID() string                    { return r.id }
func (r *Rental) CustomerID() string            { return r.customerID }
func (r *Rental) CarID() string                 { return r.carID }
func (r *Rental) RentalDate() time.Time         { return r.rentalDate }
func (r *Rental) ExpectedReturnDate() time.Time { return r.expectedReturnDate }
func (r *Rental) RentalPrice() Money            { return r.rentalPrice }
func (r *Rental) SurchargePrice() Money         { return r.surchargePrice }
func (r *Rental) LoyaltyPointsEarned() int      { return r.loyaltyPointsEarned }
func (r *Rental) IsReturned() bool              { return r.returned }

// ActualReturnDate returns the return date and whether it has been set.
func (r *Rental) ActualReturnDate() (time.Time, bool) {
	if r.actualReturnDate == nil {
		return time.Time{}, false
	}
	return *r.actualReturnDate, true
}

// RehydrateRental rebuilds a rental from persisted state, bypassing creation
// validation. For repository use only.
func RehydrateRental(id, customerID, carID string, rentalDate, expectedReturnDate time.Time, actualReturnDate *time.Time, rentalPrice, surchargePrice Money, loyaltyPoints int, returned bool) *Rental {
	return &Rental{
		id:                  id,
		customerID:          customerID,
		carID:               carID,
		rentalDate:          rentalDate,
		expectedReturnDate:  expectedReturnDate,
		actualReturnDate:    actualReturnDate,
		rentalPrice:         rentalPrice,
		surchargePrice:      surchargePrice,
		loyaltyPointsEarned: loyaltyPoints,
		returned:            returned,
	}
}
