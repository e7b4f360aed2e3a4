package domain

import "fmt"

// Money holds a non-negative amount in cents. All rental and surcharge
// formulas produce integral cents, so arithmetic stays exact.
type Money struct {
	cents int64
}

// NewMoney creates a Money value, rejecting negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrInvalidArgument("money amount cannot be negative: %d", cents)
	}
	return Money{cents: cents}, nil
}

// Zero is the zero monetary amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference, failing if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, ErrInvalidArgument("subtracting %d from %d cents would be negative", other.cents, m.cents)
	}
	return Money{cents: m.cents - other.cents}, nil
}

// Mul scales the amount by a non-negative factor, typically a day count.
func (m Money) Mul(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, ErrInvalidArgument("multiplier cannot be negative: %d", factor)
	}
	return Money{cents: m.cents * factor}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
