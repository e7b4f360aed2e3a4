package domain

import "strings"

// Customer is a renter with a loyalty-point counter that only ever grows.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// NewCustomer creates a customer with zero loyalty points.
func NewCustomer(id, name, email string) (*Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidArgument("customer id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidArgument("customer name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrInvalidArgument("customer email cannot be empty")
	}
	return &Customer{ID: id, Name: name, Email: email}, nil
}

// AddLoyaltyPoints credits points earned by a completed rent workflow.
func (c *Customer) AddLoyaltyPoints(points int) error {
	if points < 0 {
		return ErrInvalidArgument("loyalty points to add cannot be negative: %d", points)
	}
	c.LoyaltyPoints += points
	return nil
}
