package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
)

var vehicleRows = []string{"id", "name", "category", "license_plate", "color", "active", "created_on", "updated_on"}

func TestVehicleRepository_Create(t *testing.T) {
	t.Run("Assigns the generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehicleRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vehicles`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(3)))

		v := &domain.Vehicle{Name: "Transit 2", Category: domain.VehicleCategoryVan, LicensePlate: "KJL-204", Active: true}
		err := repo.Create(context.Background(), v)

		assert.NoError(t, err)
		assert.Equal(t, int32(3), v.ID)
	})

	t.Run("Duplicate plate maps to plate taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehicleRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vehicles`)).
			WillReturnError(&pq.Error{Code: "23505"})

		v := &domain.Vehicle{Name: "Transit 2", Category: domain.VehicleCategoryVan, LicensePlate: "KJL-204"}
		err := repo.Create(context.Background(), v)

		assert.ErrorIs(t, err, domain.ErrPlateTaken)
	})
}

func TestVehicleRepository_Exists(t *testing.T) {
	t.Run("Active vehicle exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehicleRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM vehicles WHERE id = $1 AND active)`)).
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		ok, err := repo.Exists(context.Background(), 3)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Deactivated vehicle does not", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehicleRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`AND active)`)).
			WithArgs(int32(4)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		ok, err := repo.Exists(context.Background(), 4)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestVehicleRepository_Delete(t *testing.T) {
	t.Run("Referenced vehicle cannot be deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehicleRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM vehicles WHERE id = $1`)).
			WithArgs(int32(3)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Delete(context.Background(), 3)

		assert.ErrorIs(t, err, domain.ErrVehicleHasBookings)
	})

	t.Run("Missing vehicle reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehicleRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM vehicles WHERE id = $1`)).
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})
}

func TestVehicleRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM vehicles WHERE active ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows(vehicleRows).
			AddRow(int32(1), "Corolla", "CAR", "ABC-123", "blue", true, now, now).
			AddRow(int32(2), "Transit", "VAN", "DEF-456", "", true, now, now))

	vehicles, err := repo.List(context.Background(), true)

	assert.NoError(t, err)
	assert.Len(t, vehicles, 2)
	assert.Equal(t, domain.VehicleCategoryVan, vehicles[1].Category)
}
