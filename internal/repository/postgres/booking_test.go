package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var bookingRows = []string{"id", "user_id", "vehicle_id", "start_time", "end_time", "title", "description", "created_on", "updated_on"}

func TestBookingRepository_Create(t *testing.T) {
	start := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("Serializes on the vehicle and commits", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)).
			WithArgs(bookingLockClass, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM bookings WHERE vehicle_id = $1 AND start_time < $3 AND end_time > $2 AND id <> $4 LIMIT 1`)).
			WithArgs(int32(3), start, end, int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(42)))
		mock.ExpectCommit()

		b := &domain.Booking{UserID: 7, VehicleID: 3, StartTime: start, EndTime: end, Title: "Site visit"}
		err := repo.Create(context.Background(), b)

		assert.NoError(t, err)
		assert.Equal(t, int32(42), b.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict found under the lock rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)).
			WithArgs(bookingLockClass, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM bookings`)).
			WithArgs(int32(3), start, end, int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(9)))
		mock.ExpectRollback()

		b := &domain.Booking{UserID: 7, VehicleID: 3, StartTime: start, EndTime: end}
		err := repo.Create(context.Background(), b)

		assert.ErrorIs(t, err, domain.ErrBookingConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exclusion constraint backstop maps to conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)).
			WithArgs(bookingLockClass, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM bookings`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
			WillReturnError(&pq.Error{Code: "23P01"})
		mock.ExpectRollback()

		b := &domain.Booking{UserID: 7, VehicleID: 3, StartTime: start, EndTime: end}
		err := repo.Create(context.Background(), b)

		assert.ErrorIs(t, err, domain.ErrBookingConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing vehicle reference maps to vehicle not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM bookings`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
			WillReturnError(&pq.Error{Code: "23503"})
		mock.ExpectRollback()

		b := &domain.Booking{UserID: 7, VehicleID: 99, StartTime: start, EndTime: end}
		err := repo.Create(context.Background(), b)

		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Update(t *testing.T) {
	start := time.Date(2030, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("Re-check skips the booking's own row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)).
			WithArgs(bookingLockClass, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM bookings`)).
			WithArgs(int32(3), start, end, int32(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		b := &domain.Booking{ID: 42, UserID: 7, VehicleID: 3, StartTime: start, EndTime: end}
		err := repo.Update(context.Background(), b)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Vanished booking reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM bookings`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		b := &domain.Booking{ID: 42, VehicleID: 3, StartTime: start, EndTime: end}
		err := repo.Update(context.Background(), b)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
			WithArgs(int32(42)).
			WillReturnRows(sqlmock.NewRows(bookingRows).
				AddRow(int32(42), int32(7), int32(3), now, now.Add(time.Hour), "Site visit", "", now, now))

		b, err := repo.GetByID(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, int32(3), b.VehicleID)
	})

	t.Run("Missing row maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
			WithArgs(int32(999)).
			WillReturnRows(sqlmock.NewRows(bookingRows))

		_, err := repo.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	from := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE start_time < $2 AND end_time > $1`)).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(bookingRows).
			AddRow(int32(1), int32(7), int32(3), from.Add(time.Hour), from.Add(2*time.Hour), "A", "", now, now).
			AddRow(int32(2), int32(8), int32(3), from.Add(3*time.Hour), from.Add(4*time.Hour), "B", "", now, now))

	bookings, err := repo.ListBetween(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_DeleteEndedBefore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	cutoff := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bookings WHERE end_time < $1`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.DeleteEndedBefore(context.Background(), cutoff)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
