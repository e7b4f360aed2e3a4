package domain

import "strings"

// CarCategory is the pricing class of a car. The set is closed: every pricing
// branch enumerates it explicitly.
type CarCategory string

const (
	CategoryPremium CarCategory = "PREMIUM"
	CategorySUV     CarCategory = "SUV"
	CategorySmall   CarCategory = "SMALL"
)

// ParseCarCategory maps external input onto the closed category set.
func ParseCarCategory(s string) (CarCategory, error) {
	switch CarCategory(strings.ToUpper(s)) {
	case CategoryPremium:
		return CategoryPremium, nil
	case CategorySUV:
		return CategorySUV, nil
	case CategorySmall:
		return CategorySmall, nil
	default:
		return "", ErrInvalidArgument("unknown car category %q", s)
	}
}

type CarStatus string

const (
	CarStatusAvailable CarStatus = "AVAILABLE"
	CarStatusRented    CarStatus = "RENTED"
)

// Car is a fleet vehicle. Availability is flipped by the rent and return
// workflows, not by the Rental entity itself.
type Car struct {
	ID       string      `json:"id"`
	Model    string      `json:"model"`
	Category CarCategory `json:"category"`
	Status   CarStatus   `json:"status"`
}

// NewCar creates an available car, validating identity and model.
func NewCar(id, model string, category CarCategory) (*Car, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidArgument("car id cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, ErrInvalidArgument("car model cannot be empty")
	}
	if _, err := ParseCarCategory(string(category)); err != nil {
		return nil, err
	}
	return &Car{
		ID:       id,
		Model:    model,
		Category: category,
		Status:   CarStatusAvailable,
	}, nil
}

// IsAvailable reports whether the car can be rented.
func (c *Car) IsAvailable() bool {
	return c.Status == CarStatusAvailable
}

// MarkRented flags the car as held by an active rental.
func (c *Car) MarkRented() {
	c.Status = CarStatusRented
}

// MarkAvailable releases the car back into the fleet.
func (c *Car) MarkAvailable() {
	c.Status = CarStatusAvailable
}
