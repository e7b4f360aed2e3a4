package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// SendOverdueReminders emails every customer holding an active rental past its
// expected return date, quoting the surcharge accrued so far. Rental state is
// not touched; the surcharge is only booked when the car actually comes back.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		now := time.Now()

		overdue, err := jr.store.RentalRepository.ListOverdue(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for _, rental := range overdue {
			daysLate := int(now.Sub(rental.ExpectedReturnDate()).Hours() / 24)
			if daysLate < 1 {
				continue
			}

			car, err := jr.store.CarRepository.GetByID(ctx, rental.CarID())
			if err != nil {
				logger.Error("Failed to load car for overdue rental", "rental_id", rental.ID(), "error", err)
				continue
			}
			customer, err := jr.store.CustomerRepository.GetByID(ctx, rental.CustomerID())
			if err != nil {
				logger.Error("Failed to load customer for overdue rental", "rental_id", rental.ID(), "error", err)
				continue
			}

			projected, err := jr.pricing.CalculateSurchargePrice(car.Category, daysLate)
			if err != nil {
				logger.Error("Failed to project surcharge", "rental_id", rental.ID(), "error", err)
				continue
			}

			if err := jr.email.SendOverdueReminder(ctx, customer.Email, customer.Name, car.Model, daysLate, projected); err != nil {
				logger.Error("Failed to send overdue reminder", "rental_id", rental.ID(), "error", err)
				continue
			}
			sent++
			logger.Debug("Sent overdue reminder", "rental_id", rental.ID(),
				"customer_id", customer.ID, "days_late", daysLate, "projected_surcharge_cents", projected.Cents())
		}

		logger.Info("Overdue reminder sweep finished", "overdue", len(overdue), "reminders_sent", sent)
	})
}
