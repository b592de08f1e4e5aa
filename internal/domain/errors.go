package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPlateTaken         = errors.New("license plate already registered")
	ErrInvalidInterval    = errors.New("end time must be after start time")
	ErrPastBooking        = errors.New("booking cannot start in the past")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrBookingConflict    = errors.New("vehicle is already booked for this period")
	ErrForbidden          = errors.New("forbidden")
	ErrVehicleHasBookings = errors.New("vehicle has bookings and cannot be deleted")
)
