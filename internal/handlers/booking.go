package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Aryan1212a/TripSync/internal/auth"
	"github.com/Aryan1212a/TripSync/internal/services"
	"github.com/Aryan1212a/TripSync/types"
	"github.com/go-chi/chi/v5"
)

// BookingHandler provides HTTP handlers for bookings.
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler constructs a handler with the provided service.
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRouter registers booking routes on the given router. Every route
// requires authentication; list routes are additionally role-gated.
func BookingRouter(
	r chi.Router,
	bookingService *services.BookingService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewBookingHandler(bookingService)

	r.Use(authMiddleware)
	r.Post("/", handler.CreateBooking)
	r.Get("/my", handler.MyBookings)
	r.With(auth.RequireRoles(types.RoleAdmin)).Get("/all", handler.AllBookings)
	r.With(auth.RequireRoles(types.RoleTravelPartner)).Get("/agent", handler.AgentBookings)
}

// CreateBooking books a package for the authenticated caller. The package
// must exist; the payment step always succeeds.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var req services.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.PackageID = strings.TrimSpace(req.PackageID)
	if req.PackageID == "" {
		writeError(w, http.StatusBadRequest, "package_id is required")
		return
	}
	if req.Persons < 1 {
		writeError(w, http.StatusBadRequest, "persons must be at least 1")
		return
	}

	booking, err := h.bookingService.Create(r.Context(), claims.Email, req)
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to create booking")
		return
	}

	writeJSON(w, http.StatusCreated, BookingResponse{
		Message: "Booking successful",
		Booking: booking,
	})
}

// MyBookings returns the caller's own bookings.
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	bookings, err := h.bookingService.MyBookings(r.Context(), claims.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// AllBookings returns every booking. Admin only.
func (h *BookingHandler) AllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.AllBookings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// AgentBookings returns bookings against the agent's own packages. An
// agent with no packages gets an empty list, not an error.
func (h *BookingHandler) AgentBookings(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	bookings, err := h.bookingService.AgentBookings(r.Context(), claims.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// BookingResponse wraps a booking with a confirmation message.
type BookingResponse struct {
	Message string        `json:"message"`
	Booking types.Booking `json:"booking"`
}
