// Package pricing holds the rate table for the fleet. Every function is a
// pure decision keyed by car category; the rental entity never recomputes
// prices, it stores what these functions return.
package pricing

import "carrental-backend/internal/domain"

// Base daily rates in cents.
const (
	premiumDailyCents = 300_00
	suvDailyCents     = 150_00
	smallDailyCents   = 50_00
)

// Engine computes rental prices, late-return surcharges and loyalty awards.
// It is stateless and safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// CalculateRentalPrice prices a stay of the given length. Tiers apply to the
// whole stay: crossing a threshold changes the per-day rate for every day,
// not just the marginal ones.
func (e *Engine) CalculateRentalPrice(category domain.CarCategory, days int) (domain.Money, error) {
	if days < 1 {
		return domain.Money{}, domain.ErrInvalidArgument("day count must be at least 1, got %d", days)
	}
	d := int64(days)
	switch category {
	case domain.CategoryPremium:
		// Flat rate, no tiering.
		return domain.NewMoney(premiumDailyCents * d)
	case domain.CategorySUV:
		switch {
		case days <= 7:
			return domain.NewMoney(suvDailyCents * d)
		case days <= 30:
			return domain.NewMoney(suvDailyCents * 80 / 100 * d)
		default:
			return domain.NewMoney(suvDailyCents * 50 / 100 * d)
		}
	case domain.CategorySmall:
		if days <= 7 {
			return domain.NewMoney(smallDailyCents * d)
		}
		return domain.NewMoney(smallDailyCents * 60 / 100 * d)
	default:
		return domain.Money{}, domain.ErrInvalidArgument("unknown car category %q", category)
	}
}

// CalculateSurchargePrice charges for whole days past the expected return
// date. The SUV daily rate deliberately references the Small base rate
// (150 + 60% of 50 = 180/day); see the regression test before changing it.
func (e *Engine) CalculateSurchargePrice(category domain.CarCategory, extraDays int) (domain.Money, error) {
	if extraDays < 1 {
		return domain.Money{}, domain.ErrInvalidArgument("extra day count must be at least 1, got %d", extraDays)
	}
	d := int64(extraDays)
	switch category {
	case domain.CategoryPremium:
		// 300 + 20% of 300 = 360/day.
		return domain.NewMoney((premiumDailyCents + premiumDailyCents*20/100) * d)
	case domain.CategorySUV:
		return domain.NewMoney((suvDailyCents + smallDailyCents*60/100) * d)
	case domain.CategorySmall:
		// 50 + 30% of 50 = 65/day.
		return domain.NewMoney((smallDailyCents + smallDailyCents*30/100) * d)
	default:
		return domain.Money{}, domain.ErrInvalidArgument("unknown car category %q", category)
	}
}

// GetLoyaltyPoints returns the per-rental loyalty award for a category.
func (e *Engine) GetLoyaltyPoints(category domain.CarCategory) (int, error) {
	switch category {
	case domain.CategoryPremium:
		return 5, nil
	case domain.CategorySUV:
		return 3, nil
	case domain.CategorySmall:
		return 1, nil
	default:
		return 0, domain.ErrInvalidArgument("unknown car category %q", category)
	}
}
