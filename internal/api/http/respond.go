package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
	"github.com/Ahmed-779/Vehicle-Booking/internal/logger"
	"github.com/Ahmed-779/Vehicle-Booking/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError translates domain errors into stable HTTP statuses. The engine
// itself never assigns transport codes; this table is the presentation
// layer's.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidInterval), errors.Is(err, domain.ErrPastBooking):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrVehicleNotFound), errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrBookingConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrPlateTaken), errors.Is(err, domain.ErrVehicleHasBookings):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	default:
		logger.Error("Unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
