package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/repository"

	"github.com/lib/pq"
)

// bookingLockClass namespaces the advisory locks taken per vehicle so they
// cannot collide with other advisory-lock users of the same database.
const bookingLockClass = 1

const bookingColumns = `id, user_id, vehicle_id, start_time, end_time, COALESCE(title, ''), COALESCE(description, ''), created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking inside a transaction that serializes all
// admissions for the same vehicle: a per-vehicle advisory lock is taken, the
// overlap query is re-run under that lock, and only then is the row written.
// The admission engine's precheck has already produced the user-facing
// message; this re-check closes the window between evaluate and commit. The
// schema's exclusion constraint on (vehicle_id, tstzrange) remains the final
// backstop and is translated to the same conflict error.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockVehicle(ctx, tx, b.VehicleID); err != nil {
		return err
	}
	if err := checkOverlap(ctx, tx, b.VehicleID, b.StartTime, b.EndTime, 0); err != nil {
		return err
	}

	now := time.Now()
	b.CreatedOn = now
	b.UpdatedOn = now
	query := `INSERT INTO bookings (user_id, vehicle_id, start_time, end_time, title, description, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, query, b.UserID, b.VehicleID, b.StartTime, b.EndTime, b.Title, b.Description, b.CreatedOn, b.UpdatedOn).Scan(&b.ID)
	if err != nil {
		return translateBookingError(err)
	}
	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.UserID, &b.VehicleID, &b.StartTime, &b.EndTime, &b.Title, &b.Description, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update rewrites the booking under the same per-vehicle serialization as
// Create. The overlap re-check skips the booking's own row.
func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockVehicle(ctx, tx, b.VehicleID); err != nil {
		return err
	}
	if err := checkOverlap(ctx, tx, b.VehicleID, b.StartTime, b.EndTime, b.ID); err != nil {
		return err
	}

	b.UpdatedOn = time.Now()
	query := `UPDATE bookings SET vehicle_id=$1, start_time=$2, end_time=$3, title=$4, description=$5, updated_on=$6 WHERE id=$7`
	res, err := tx.ExecContext(ctx, query, b.VehicleID, b.StartTime, b.EndTime, b.Title, b.Description, b.UpdatedOn, b.ID)
	if err != nil {
		return translateBookingError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *bookingRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE vehicle_id = $1 ORDER BY start_time`, bookingColumns)
	return r.queryBookings(ctx, query, vehicleID)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE user_id = $1 ORDER BY start_time`, bookingColumns)
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	// Same half-open intersection as the admission check, against the window.
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE start_time < $2 AND end_time > $1 ORDER BY start_time`, bookingColumns)
	return r.queryBookings(ctx, query, from, to)
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY start_time`, bookingColumns)
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) CountByVehicle(ctx context.Context, vehicleID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE vehicle_id = $1`, vehicleID).Scan(&count)
	return count, err
}

func (r *bookingRepository) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE end_time < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.VehicleID, &b.StartTime, &b.EndTime, &b.Title, &b.Description, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func lockVehicle(ctx context.Context, tx *sql.Tx, vehicleID int32) error {
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, bookingLockClass, vehicleID)
	return err
}

func checkOverlap(ctx context.Context, tx *sql.Tx, vehicleID int32, start, end time.Time, excludeID int32) error {
	var conflictID int32
	query := `SELECT id FROM bookings WHERE vehicle_id = $1 AND start_time < $3 AND end_time > $2 AND id <> $4 LIMIT 1`
	err := tx.QueryRowContext(ctx, query, vehicleID, start, end, excludeID).Scan(&conflictID)
	if err == nil {
		return fmt.Errorf("booking %d: %w", conflictID, domain.ErrBookingConflict)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

func translateBookingError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23P01": // exclusion_violation from the backstop constraint
			return domain.ErrBookingConflict
		case "23503": // vehicle_id references a missing vehicle
			return domain.ErrVehicleNotFound
		}
	}
	return err
}
