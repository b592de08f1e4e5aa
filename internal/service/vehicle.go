package service

import (
	"context"
	"fmt"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	bookingRepo repository.BookingRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, bookingRepo repository.BookingRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *vehicleService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if !domain.ValidVehicleCategory(v.Category) {
		return fmt.Errorf("unknown vehicle category %q", v.Category)
	}
	v.Active = true
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if !domain.ValidVehicleCategory(v.Category) {
		return fmt.Errorf("unknown vehicle category %q", v.Category)
	}
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) DeactivateVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Active = false
	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	count, err := s.bookingRepo.CountByVehicle(ctx, id)
	if err != nil {
		return err
	}
	// Deactivation is the supported path for vehicles with history; the
	// repository's foreign key restricts the delete as well.
	if count > 0 {
		return domain.ErrVehicleHasBookings
	}
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx, activeOnly)
}
