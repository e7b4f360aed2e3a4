package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// Schema note: a partial unique index on rentals(car_id) WHERE NOT is_returned
// gives the one-active-rental-per-car guarantee; the workflows rely on the
// database for that serialization.
type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, car_id, rental_date, expected_return_date, actual_return_date, rental_price_cents, surcharge_price_cents, loyalty_points, is_returned`

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals (` + rentalColumns + `, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	var actual *time.Time
	if t, ok := rental.ActualReturnDate(); ok {
		actual = &t
	}
	_, err := r.db.ExecContext(ctx, query,
		rental.ID(), rental.CustomerID(), rental.CarID(),
		rental.RentalDate(), rental.ExpectedReturnDate(), actual,
		rental.RentalPrice().Cents(), rental.SurchargePrice().Cents(),
		rental.LoyaltyPointsEarned(), rental.IsReturned(), time.Now())
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rental, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("rental", id)
	}
	return rental, err
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	query := `UPDATE rentals SET actual_return_date=$1, surcharge_price_cents=$2, is_returned=$3 WHERE id=$4`
	var actual *time.Time
	if t, ok := rental.ActualReturnDate(); ok {
		actual = &t
	}
	_, err := r.db.ExecContext(ctx, query, actual, rental.SurchargePrice().Cents(), rental.IsReturned(), rental.ID())
	return err
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 ORDER BY rental_date DESC`
	return r.list(ctx, query, customerID)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, cutoff time.Time) ([]*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE NOT is_returned AND expected_return_date < $1 ORDER BY expected_return_date`
	return r.list(ctx, query, cutoff)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var (
		id, customerID, carID    string
		rentalDate, expectedDate time.Time
		actualDate               sql.NullTime
		priceCents, srchgCents   int64
		loyaltyPoints            int
		returned                 bool
	)
	err := row.Scan(&id, &customerID, &carID, &rentalDate, &expectedDate, &actualDate,
		&priceCents, &srchgCents, &loyaltyPoints, &returned)
	if err != nil {
		return nil, err
	}
	price, err := domain.NewMoney(priceCents)
	if err != nil {
		return nil, err
	}
	surcharge, err := domain.NewMoney(srchgCents)
	if err != nil {
		return nil, err
	}
	var actual *time.Time
	if actualDate.Valid {
		actual = &actualDate.Time
	}
	return domain.RehydrateRental(id, customerID, carID, rentalDate, expectedDate, actual,
		price, surcharge, loyaltyPoints, returned), nil
}
