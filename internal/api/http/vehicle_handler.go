package http

import (
	"net/http"
	"strconv"

	"github.com/Ahmed-779/Vehicle-Booking/internal/service"

	"github.com/gorilla/mux"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
	bookingSvc service.BookingService
}

func NewVehicleHandler(vehicleSvc service.VehicleService, bookingSvc service.BookingService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, bookingSvc: bookingSvc}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// List returns active vehicles; ?all=true includes deactivated ones.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"
	vehicles, err := h.vehicleSvc.ListVehicles(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	bookings, err := h.bookingSvc.ListVehicleBookings(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
