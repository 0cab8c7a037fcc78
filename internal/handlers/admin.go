package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Aryan1212a/TripSync/internal/auth"
	"github.com/Aryan1212a/TripSync/internal/services"
	"github.com/Aryan1212a/TripSync/types"
	"github.com/go-chi/chi/v5"
)

// AdminHandler provides the admin-only management endpoints.
type AdminHandler struct {
	userService    *services.UserService
	packageService *services.PackageService
	bookingService *services.BookingService
}

// NewAdminHandler constructs a handler with the provided services.
func NewAdminHandler(
	userService *services.UserService,
	packageService *services.PackageService,
	bookingService *services.BookingService,
) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		packageService: packageService,
		bookingService: bookingService,
	}
}

// AdminRouter registers admin routes on the given router. Every route is
// gated on the admin role.
func AdminRouter(
	r chi.Router,
	userService *services.UserService,
	packageService *services.PackageService,
	bookingService *services.BookingService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewAdminHandler(userService, packageService, bookingService)

	r.Use(authMiddleware, auth.RequireRoles(types.RoleAdmin))
	r.Get("/users", handler.ListUsers)
	r.Put("/users/{userID}/role", handler.ChangeRole)
	r.Delete("/users/{userID}", handler.DeleteUser)
	r.Get("/packages", handler.ListPackages)
	r.Delete("/packages/{packageID}", handler.DeletePackage)
	r.Get("/bookings", handler.ListBookings)
}

// ListUsers returns every account. Password hashes are suppressed at the
// type level, so this redaction holds on the admin path too.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ChangeRole updates a user's role, e.g. promoting a traveler to agent.
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Role = strings.TrimSpace(req.Role)

	err := h.userService.ChangeRole(r.Context(), chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			writeError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		writeStoreError(w, err, "User not found", "failed to update role")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Role updated successfully"})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		writeStoreError(w, err, "User not found", "failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "User removed"})
}

// ListPackages returns every package regardless of status.
func (h *AdminHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.packageService.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list packages")
		return
	}
	writeJSON(w, http.StatusOK, pkgs)
}

// DeletePackage removes any package unconditionally.
func (h *AdminHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.packageService.Delete(r.Context(), chi.URLParam(r, "packageID")); err != nil {
		writeStoreError(w, err, "Package not found", "failed to delete package")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Package deleted"})
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.AllBookings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}
