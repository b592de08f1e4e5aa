package repository

import (
	"context"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	// Delete removes the user and, through the schema's cascade, every booking
	// they own.
	Delete(ctx context.Context, id int32) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Exists(ctx context.Context, id int32) (bool, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error)
}

type BookingRepository interface {
	// Create inserts the booking after re-checking for interval overlap inside
	// a transaction that holds the per-vehicle lock. Returns
	// domain.ErrBookingConflict if another booking occupies the interval.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	// Update rewrites the interval and metadata under the same per-vehicle
	// serialization as Create, ignoring the booking's own row in the overlap
	// re-check.
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int32) error
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	CountByVehicle(ctx context.Context, vehicleID int32) (int32, error)
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
