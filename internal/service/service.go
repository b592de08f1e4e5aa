package service

import (
	"context"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password, color string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, color string) (*domain.User, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeactivateVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	// DeleteVehicle hard-deletes a vehicle; it fails with
	// domain.ErrVehicleHasBookings while any booking references it.
	DeleteVehicle(ctx context.Context, id int32) error
	ListVehicles(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error)
}

type BookingService interface {
	// CreateBooking admits and commits a reservation owned by ownerID. A
	// non-admin requester may only book for themselves.
	CreateBooking(ctx context.Context, requesterID int32, isAdmin bool, ownerID, vehicleID int32, start, end time.Time, title, description string) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, requesterID int32, isAdmin bool, bookingID, vehicleID int32, start, end time.Time, title, description string) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, requesterID int32, isAdmin bool, bookingID int32) error
	GetBooking(ctx context.Context, bookingID int32) (*domain.Booking, error)
	ListCalendar(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	ListUserBookings(ctx context.Context, userID int32) ([]domain.Booking, error)
	ListVehicleBookings(ctx context.Context, vehicleID int32) ([]domain.Booking, error)
	// PurgeExpired removes every booking whose end instant has passed.
	PurgeExpired(ctx context.Context) (int64, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	// DeleteUser removes the account and all of its bookings.
	DeleteUser(ctx context.Context, userID int32) error
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name, vehicleName string, start, end time.Time) error
	SendBookingCancellation(ctx context.Context, email, name, vehicleName string, start, end time.Time) error
}
