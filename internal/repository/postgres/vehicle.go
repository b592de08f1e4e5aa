package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/repository"

	"github.com/lib/pq"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (name, category, license_plate, color, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	v.CreatedOn = now
	v.UpdatedOn = now
	err := r.db.QueryRowContext(ctx, query, v.Name, v.Category, v.LicensePlate, v.Color, v.Active, v.CreatedOn, v.UpdatedOn).Scan(&v.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrPlateTaken
	}
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, name, category, license_plate, COALESCE(color, ''), active, created_on, updated_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.Category, &v.LicensePlate, &v.Color, &v.Active, &v.CreatedOn, &v.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM vehicles WHERE id = $1 AND active)`, id).Scan(&exists)
	return exists, err
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, category=$2, license_plate=$3, color=$4, active=$5, updated_on=$6 WHERE id=$7`
	v.UpdatedOn = time.Now()
	res, err := r.db.ExecContext(ctx, query, v.Name, v.Category, v.LicensePlate, v.Color, v.Active, v.UpdatedOn, v.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrPlateTaken
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		// bookings.vehicle_id restricts the delete while bookings exist
		return domain.ErrVehicleHasBookings
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error) {
	query := `SELECT id, name, category, license_plate, COALESCE(color, ''), active, created_on, updated_on FROM vehicles`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.LicensePlate, &v.Color, &v.Active, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
