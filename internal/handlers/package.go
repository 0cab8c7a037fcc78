package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Aryan1212a/TripSync/internal/auth"
	"github.com/Aryan1212a/TripSync/internal/services"
	"github.com/Aryan1212a/TripSync/internal/storage"
	"github.com/Aryan1212a/TripSync/types"
	"github.com/go-chi/chi/v5"
)

const (
	maxImageMemory = 10 << 20
	formFieldImage = "image"
)

// PackageHandler provides HTTP handlers for travel packages.
type PackageHandler struct {
	packageService *services.PackageService
	media          *storage.MediaStorage
}

// NewPackageHandler constructs a handler with the provided dependencies.
// media may be nil when no object storage is configured.
func NewPackageHandler(packageService *services.PackageService, media *storage.MediaStorage) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		media:          media,
	}
}

// PackageRouter registers package routes on the given router.
func PackageRouter(
	r chi.Router,
	packageService *services.PackageService,
	media *storage.MediaStorage,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewPackageHandler(packageService, media)

	r.Get("/", handler.ListPackages)
	r.With(authMiddleware, auth.RequireRoles(types.RoleTravelPartner, types.RoleAdmin)).Post("/", handler.CreatePackage)
	r.With(authMiddleware, auth.RequireRoles(types.RoleAdmin)).Get("/pending/all", handler.ListPending)
	r.Route("/{packageID}", func(r chi.Router) {
		r.Get("/", handler.GetPackage)
		r.With(authMiddleware, auth.RequireRoles(types.RoleTravelPartner, types.RoleAdmin)).Put("/", handler.UpdatePackage)
		r.With(authMiddleware, auth.RequireRoles(types.RoleTravelPartner, types.RoleAdmin)).Delete("/", handler.DeletePackage)
		r.With(authMiddleware, auth.RequireRoles(types.RoleTravelPartner, types.RoleAdmin)).Post("/gallery", handler.UploadGalleryImage)
		r.With(authMiddleware, auth.RequireRoles(types.RoleAdmin)).Patch("/approve", handler.ApprovePackage)
		r.With(authMiddleware, auth.RequireRoles(types.RoleAdmin)).Patch("/reject", handler.RejectPackage)
	})
}

// ListPackages returns approved packages, optionally filtered by
// ?category= and searched by ?q= on title/location.
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	pkgs, err := h.packageService.ListPublic(r.Context(), category, query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list packages")
		return
	}
	writeJSON(w, http.StatusOK, pkgs)
}

// ListPending returns packages awaiting review. Admin only.
func (h *PackageHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.packageService.ListPending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list packages")
		return
	}
	writeJSON(w, http.StatusOK, pkgs)
}

func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.packageService.Get(r.Context(), chi.URLParam(r, "packageID"))
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to fetch package")
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	req, err := parsePackagePayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.packageService.Create(r.Context(), req, claims.Email, claims.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create package")
		return
	}

	writeJSON(w, http.StatusCreated, PackageResponse{
		Message: "Package created successfully",
		Package: created,
	})
}

// UpdatePackage edits a package. Existence is resolved before ownership,
// so a missing package is 404 for every caller.
func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	id := chi.URLParam(r, "packageID")
	existing, err := h.packageService.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to fetch package")
		return
	}

	if err := auth.CanUpdatePackage(claims, existing); err != nil {
		writeError(w, http.StatusForbidden, "You cannot edit this package")
		return
	}

	req, err := parsePackagePayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.packageService.Update(r.Context(), id, req)
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to update package")
		return
	}

	writeJSON(w, http.StatusOK, PackageResponse{
		Message: "Updated successfully",
		Package: updated,
	})
}

// DeletePackage removes a package. Admins delete unconditionally; an
// agent must own the package and it must still be pending.
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	id := chi.URLParam(r, "packageID")
	existing, err := h.packageService.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to fetch package")
		return
	}

	if err := auth.CanDeletePackage(claims, existing); err != nil {
		if errors.Is(err, auth.ErrNotPending) {
			writeError(w, http.StatusForbidden, "You can only delete pending packages")
			return
		}
		writeError(w, http.StatusForbidden, "You cannot delete this package")
		return
	}

	if err := h.packageService.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "Package not found", "failed to delete package")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Package deleted"})
}

func (h *PackageHandler) ApprovePackage(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.packageService.Approve, "Package approved")
}

func (h *PackageHandler) RejectPackage(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.packageService.Reject, "Package rejected")
}

// UploadGalleryImage stores an image in object storage and appends its
// URL to the package gallery. 503 when no storage backend is configured.
func (h *PackageHandler) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	if h.media == nil {
		writeError(w, http.StatusServiceUnavailable, "media storage is not configured")
		return
	}

	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	id := chi.URLParam(r, "packageID")
	existing, err := h.packageService.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to fetch package")
		return
	}

	if err := auth.CanUpdatePackage(claims, existing); err != nil {
		writeError(w, http.StatusForbidden, "You cannot edit this package")
		return
	}

	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile(formFieldImage)
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	url, err := h.media.UploadPackageImage(r.Context(), id, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			writeError(w, http.StatusBadRequest, "unsupported media type")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	updated, err := h.packageService.AddGalleryURL(r.Context(), id, url)
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to update package")
		return
	}

	writeJSON(w, http.StatusOK, PackageResponse{
		Message: "Image uploaded",
		Package: updated,
	})
}

func (h *PackageHandler) setStatus(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, id string) (types.Package, error),
	message string,
) {
	pkg, err := transition(r.Context(), chi.URLParam(r, "packageID"))
	if err != nil {
		writeStoreError(w, err, "Package not found", "failed to update package")
		return
	}
	writeJSON(w, http.StatusOK, PackageResponse{Message: message, Package: pkg})
}

// PackageResponse wraps a package with a confirmation message.
type PackageResponse struct {
	Message string        `json:"message"`
	Package types.Package `json:"package"`
}

func parsePackagePayload(r *http.Request) (types.Package, error) {
	var req types.Package
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return types.Package{}, errors.New("invalid request")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)
	if req.Title == "" {
		return types.Package{}, errors.New("title is required")
	}
	if req.Location == "" {
		return types.Package{}, errors.New("location is required")
	}
	return req, nil
}
