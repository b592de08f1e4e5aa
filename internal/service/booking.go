package service

import (
	"context"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/booking"
	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/logger"
	"github.com/Ahmed-779/Vehicle-Booking/internal/repository"
)

// rejectionError surfaces the admission engine's message while remaining
// matchable against the sentinel via errors.Is.
type rejectionError struct {
	msg      string
	sentinel error
}

func (e *rejectionError) Error() string { return e.msg }
func (e *rejectionError) Unwrap() error { return e.sentinel }

func decisionError(d booking.Decision) error {
	var sentinel error
	switch d.Kind {
	case booking.RejectInvalidInterval:
		sentinel = domain.ErrInvalidInterval
	case booking.RejectPastBooking:
		sentinel = domain.ErrPastBooking
	case booking.RejectVehicleNotFound:
		sentinel = domain.ErrVehicleNotFound
	case booking.RejectConflict:
		sentinel = domain.ErrBookingConflict
	case booking.RejectForbidden:
		sentinel = domain.ErrForbidden
	default:
		return nil
	}
	return &rejectionError{msg: d.Message, sentinel: sentinel}
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, requesterID int32, isAdmin bool, ownerID, vehicleID int32, start, end time.Time, title, description string) (*domain.Booking, error) {
	if requesterID != ownerID && !isAdmin {
		return nil, domain.ErrForbidden
	}

	vehicleExists, existing, err := s.loadVehicleState(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	candidate := booking.Candidate{VehicleID: vehicleID, Start: start, End: end}
	decision := booking.EvaluateCreate(candidate, existing, vehicleExists, s.now())
	if !decision.Admitted {
		return nil, decisionError(decision)
	}

	b := &domain.Booking{
		UserID:      ownerID,
		VehicleID:   vehicleID,
		StartTime:   start,
		EndTime:     end,
		Title:       title,
		Description: description,
	}
	// The repository re-checks under the per-vehicle lock; a concurrent
	// admission that slipped between evaluate and commit comes back as
	// ErrBookingConflict here.
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.notify(ctx, b, s.emailSvc.SendBookingConfirmation)
	return b, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, requesterID int32, isAdmin bool, bookingID, vehicleID int32, start, end time.Time, title, description string) (*domain.Booking, error) {
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	vehicleExists, existing, err := s.loadVehicleState(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	candidate := booking.Candidate{VehicleID: vehicleID, Start: start, End: end}
	decision := booking.EvaluateUpdate(candidate, existing, vehicleExists, s.now(), bookingID, requesterID, current.UserID, isAdmin)
	if !decision.Admitted {
		return nil, decisionError(decision)
	}

	current.VehicleID = vehicleID
	current.StartTime = start
	current.EndTime = end
	current.Title = title
	current.Description = description
	if err := s.bookingRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, requesterID int32, isAdmin bool, bookingID int32) error {
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	decision := booking.EvaluateDelete(bookingID, requesterID, current.UserID, isAdmin)
	if !decision.Admitted {
		return decisionError(decision)
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.notify(ctx, current, s.emailSvc.SendBookingCancellation)
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) ListCalendar(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	return s.bookingRepo.ListBetween(ctx, from, to)
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID int32) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) ListVehicleBookings(ctx context.Context, vehicleID int32) ([]domain.Booking, error) {
	return s.bookingRepo.ListByVehicle(ctx, vehicleID)
}

func (s *bookingService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.bookingRepo.DeleteEndedBefore(ctx, s.now())
}

// loadVehicleState fetches the inputs the admission engine needs: whether the
// vehicle is usable and every booking currently held for it.
func (s *bookingService) loadVehicleState(ctx context.Context, vehicleID int32) (bool, []domain.Booking, error) {
	exists, err := s.vehicleRepo.Exists(ctx, vehicleID)
	if err != nil {
		return false, nil, err
	}
	if !exists {
		return false, nil, nil
	}
	existing, err := s.bookingRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return false, nil, err
	}
	return true, existing, nil
}

// notify sends a booking email best-effort; delivery failures are logged, not
// returned.
func (s *bookingService) notify(ctx context.Context, b *domain.Booking, send func(context.Context, string, string, string, time.Time, time.Time) error) {
	owner, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		return
	}
	vehicleName := ""
	if v, err := s.vehicleRepo.GetByID(ctx, b.VehicleID); err == nil {
		vehicleName = v.Name
	}
	if err := send(ctx, owner.Email, owner.Name, vehicleName, b.StartTime, b.EndTime); err != nil {
		logger.Warn("Failed to send booking email", "booking_id", b.ID, "error", err)
	}
}
