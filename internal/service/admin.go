package service

import (
	"context"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/logger"
	"github.com/Ahmed-779/Vehicle-Booking/internal/repository"
)

type adminService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
}

func NewAdminService(userRepo repository.UserRepository, bookingRepo repository.BookingRepository) AdminService {
	return &adminService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) DeleteUser(ctx context.Context, userID int32) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info("Deleted user and cascaded bookings", "user_id", userID)
	return nil
}

func (s *adminService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}
