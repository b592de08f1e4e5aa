package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/service"
)

type AdminHandler struct {
	adminSvc   service.AdminService
	vehicleSvc service.VehicleService
	bookingSvc service.BookingService
}

func NewAdminHandler(adminSvc service.AdminService, vehicleSvc service.VehicleService, bookingSvc service.BookingService) *AdminHandler {
	return &AdminHandler{
		adminSvc:   adminSvc,
		vehicleSvc: vehicleSvc,
		bookingSvc: bookingSvc,
	}
}

type vehicleRequest struct {
	Name         string                 `json:"name"`
	Category     domain.VehicleCategory `json:"category"`
	LicensePlate string                 `json:"license_plate"`
	Color        string                 `json:"color"`
	Active       *bool                  `json:"active,omitempty"`
}

func (h *AdminHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.LicensePlate == "" {
		writeBadRequest(w, "name and license_plate are required")
		return
	}
	if !domain.ValidVehicleCategory(req.Category) {
		writeBadRequest(w, "category must be one of CAR, VAN, SUV, TRUCK")
		return
	}

	v := &domain.Vehicle{
		Name:         req.Name,
		Category:     req.Category,
		LicensePlate: req.LicensePlate,
		Color:        req.Color,
	}
	if err := h.vehicleSvc.AddVehicle(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *AdminHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	v, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Name != "" {
		v.Name = req.Name
	}
	if req.Category != "" {
		if !domain.ValidVehicleCategory(req.Category) {
			writeBadRequest(w, "category must be one of CAR, VAN, SUV, TRUCK")
			return
		}
		v.Category = req.Category
	}
	if req.LicensePlate != "" {
		v.LicensePlate = req.LicensePlate
	}
	if req.Color != "" {
		v.Color = req.Color
	}
	if req.Active != nil {
		v.Active = *req.Active
	}

	if err := h.vehicleSvc.UpdateVehicle(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *AdminHandler) DeactivateVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	v, err := h.vehicleSvc.DeactivateVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *AdminHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	if err := h.vehicleSvc.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid user id")
		return
	}
	if err := h.adminSvc.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.adminSvc.ListBookings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

type purgeResponse struct {
	Purged int64 `json:"purged"`
}

// PurgeExpiredBookings removes every booking that has already ended. The
// cronjob runs the same operation nightly.
func (h *AdminHandler) PurgeExpiredBookings(w http.ResponseWriter, r *http.Request) {
	n, err := h.bookingSvc.PurgeExpired(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purgeResponse{Purged: n})
}
