package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Vehicle *VehicleHandler
	Booking *BookingHandler
	Admin   *AdminHandler
}

// NewRouter mounts the API under /api/v1. Auth endpoints are public, the
// admin subtree additionally requires the admin role claim.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	api.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Authenticate)

	protected.HandleFunc("/users/me", h.User.GetMe).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", h.User.UpdateMe).Methods(http.MethodPut)
	protected.HandleFunc("/users/me/bookings", h.User.ListMyBookings).Methods(http.MethodGet)

	protected.HandleFunc("/vehicles", h.Vehicle.List).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Get).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}/bookings", h.Vehicle.ListBookings).Methods(http.MethodGet)

	protected.HandleFunc("/bookings", h.Booking.Create).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", h.Booking.Calendar).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", h.Booking.Get).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", h.Booking.Update).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id:[0-9]+}", h.Booking.Delete).Methods(http.MethodDelete)

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(RequireAdmin)

	admin.HandleFunc("/vehicles", h.Admin.CreateVehicle).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", h.Admin.UpdateVehicle).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{id:[0-9]+}/deactivate", h.Admin.DeactivateVehicle).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", h.Admin.DeleteVehicle).Methods(http.MethodDelete)

	admin.HandleFunc("/users", h.Admin.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id:[0-9]+}", h.Admin.DeleteUser).Methods(http.MethodDelete)

	admin.HandleFunc("/bookings", h.Admin.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", h.Booking.Create).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/expired", h.Admin.PurgeExpiredBookings).Methods(http.MethodDelete)

	return r
}
