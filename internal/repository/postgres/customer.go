package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO customers (id, name, email, loyalty_points) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, customer.ID, customer.Name, customer.Email, customer.LoyaltyPoints)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer := &domain.Customer{}
	query := `SELECT id, name, email, loyalty_points FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Email, &customer.LoyaltyPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("customer", id)
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, loyalty_points=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, customer.Name, customer.Email, customer.LoyaltyPoints, customer.ID)
	return err
}
