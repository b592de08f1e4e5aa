package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// bookingRequest carries RFC 3339 timestamps; malformed values are rejected
// here, before the admission engine ever sees the candidate.
type bookingRequest struct {
	VehicleID   int32     `json:"vehicle_id"`
	UserID      int32     `json:"user_id,omitempty"` // admin booking on behalf; defaults to the caller
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

func decodeBookingRequest(w http.ResponseWriter, r *http.Request) (bookingRequest, bool) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body: timestamps must be RFC 3339")
		return req, false
	}
	if req.VehicleID <= 0 {
		writeBadRequest(w, "vehicle_id is required")
		return req, false
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		writeBadRequest(w, "start_time and end_time are required")
		return req, false
	}
	return req, true
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	req, ok := decodeBookingRequest(w, r)
	if !ok {
		return
	}

	ownerID := req.UserID
	if ownerID == 0 {
		ownerID = p.UserID
	}

	b, err := h.bookingSvc.CreateBooking(r.Context(), p.UserID, p.IsAdmin, ownerID, req.VehicleID, req.StartTime, req.EndTime, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}
	b, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}
	req, ok := decodeBookingRequest(w, r)
	if !ok {
		return
	}

	b, err := h.bookingSvc.UpdateBooking(r.Context(), p.UserID, p.IsAdmin, id, req.VehicleID, req.StartTime, req.EndTime, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}

	if err := h.bookingSvc.DeleteBooking(r.Context(), p.UserID, p.IsAdmin, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Calendar returns every booking intersecting [from, to); both bounds are
// required RFC 3339 query parameters.
func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		writeBadRequest(w, "from must be an RFC 3339 timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		writeBadRequest(w, "to must be an RFC 3339 timestamp")
		return
	}
	if !to.After(from) {
		writeBadRequest(w, "to must be after from")
		return
	}

	bookings, err := h.bookingSvc.ListCalendar(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
