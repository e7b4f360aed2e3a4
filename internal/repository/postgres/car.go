package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (id, model, category, status) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, car.ID, car.Model, car.Category, car.Status)
	return err
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	car := &domain.Car{}
	query := `SELECT id, model, category, status FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&car.ID, &car.Model, &car.Category, &car.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("car", id)
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET model=$1, category=$2, status=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, car.Model, car.Category, car.Status, car.ID)
	return err
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	return r.list(ctx, `SELECT id, model, category, status FROM cars ORDER BY model`)
}

func (r *carRepository) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	return r.list(ctx, `SELECT id, model, category, status FROM cars WHERE status = 'AVAILABLE' ORDER BY model`)
}

func (r *carRepository) list(ctx context.Context, query string) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.ID, &car.Model, &car.Category, &car.Status); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}
