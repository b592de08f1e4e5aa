package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ahmed-779/Vehicle-Booking/internal/service"
)

type UserHandler struct {
	userSvc    service.UserService
	bookingSvc service.BookingService
}

func NewUserHandler(userSvc service.UserService, bookingSvc service.BookingService) *UserHandler {
	return &UserHandler{userSvc: userSvc, bookingSvc: bookingSvc}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	user, err := h.userSvc.GetProfile(r.Context(), p.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user, err := h.userSvc.UpdateProfile(r.Context(), p.UserID, req.Name, req.Color)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	bookings, err := h.bookingSvc.ListUserBookings(r.Context(), p.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
