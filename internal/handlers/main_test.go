package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aryan1212a/TripSync/internal/auth"
	"github.com/Aryan1212a/TripSync/internal/services"
	"github.com/Aryan1212a/TripSync/internal/store"
	"github.com/Aryan1212a/TripSync/types"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "unit-test-secret"

// In-memory repositories standing in for the Mongo-backed ones. They
// honor the same sentinel errors so handlers behave identically.

type memUserRepo struct {
	users map[string]types.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]types.User{}}
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (types.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return types.User{}, store.ErrInvalidID
	}
	u, ok := m.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	m.users[user.ID.Hex()] = user
	return user, nil
}

func (m *memUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrInvalidID
	}
	u, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	m.users[id] = u
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrInvalidID
	}
	if _, ok := m.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUserRepo) List(ctx context.Context) ([]types.User, error) {
	users := []types.User{}
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

type memPackageRepo struct {
	pkgs map[string]types.Package
}

func newMemPackageRepo() *memPackageRepo {
	return &memPackageRepo{pkgs: map[string]types.Package{}}
}

func (m *memPackageRepo) GetByID(ctx context.Context, id string) (types.Package, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return types.Package{}, store.ErrInvalidID
	}
	p, ok := m.pkgs[id]
	if !ok {
		return types.Package{}, store.ErrNotFound
	}
	return p, nil
}

func (m *memPackageRepo) List(ctx context.Context, filter types.PackageFilter) ([]types.Package, error) {
	pkgs := []types.Package{}
	for _, p := range m.pkgs {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(p.Title), q) &&
				!strings.Contains(strings.ToLower(p.Location), q) {
				continue
			}
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

func (m *memPackageRepo) ListByCreator(ctx context.Context, email string) ([]types.Package, error) {
	pkgs := []types.Package{}
	for _, p := range m.pkgs {
		if p.CreatedBy == email {
			pkgs = append(pkgs, p)
		}
	}
	return pkgs, nil
}

func (m *memPackageRepo) Create(ctx context.Context, pkg types.Package) (types.Package, error) {
	pkg.ID = primitive.NewObjectID()
	pkg.CreatedAt = time.Now()
	m.pkgs[pkg.ID.Hex()] = pkg
	return pkg, nil
}

func (m *memPackageRepo) Update(ctx context.Context, id string, pkg types.Package) (types.Package, error) {
	existing, err := m.GetByID(ctx, id)
	if err != nil {
		return types.Package{}, err
	}
	pkg.ID = existing.ID
	pkg.Status = existing.Status
	pkg.CreatedBy = existing.CreatedBy
	pkg.CreatedAt = existing.CreatedAt
	m.pkgs[id] = pkg
	return pkg, nil
}

func (m *memPackageRepo) SetStatus(ctx context.Context, id, status string) (types.Package, error) {
	existing, err := m.GetByID(ctx, id)
	if err != nil {
		return types.Package{}, err
	}
	existing.Status = status
	m.pkgs[id] = existing
	return existing, nil
}

func (m *memPackageRepo) AddGalleryURL(ctx context.Context, id, url string) (types.Package, error) {
	existing, err := m.GetByID(ctx, id)
	if err != nil {
		return types.Package{}, err
	}
	existing.Gallery = append(existing.Gallery, url)
	m.pkgs[id] = existing
	return existing, nil
}

func (m *memPackageRepo) Delete(ctx context.Context, id string) error {
	if _, err := m.GetByID(ctx, id); err != nil {
		return err
	}
	delete(m.pkgs, id)
	return nil
}

type memBookingRepo struct {
	bookings []types.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{}
}

func (m *memBookingRepo) Create(ctx context.Context, booking types.Booking) (types.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	m.bookings = append(m.bookings, booking)
	return booking, nil
}

func (m *memBookingRepo) ListByUserEmail(ctx context.Context, email string) ([]types.Booking, error) {
	result := []types.Booking{}
	for _, b := range m.bookings {
		if b.UserEmail == email {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memBookingRepo) ListByPackageIDs(ctx context.Context, packageIDs []string) ([]types.Booking, error) {
	ids := map[string]struct{}{}
	for _, id := range packageIDs {
		ids[id] = struct{}{}
	}
	result := []types.Booking{}
	for _, b := range m.bookings {
		if _, ok := ids[b.PackageID]; ok {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memBookingRepo) List(ctx context.Context) ([]types.Booking, error) {
	return append([]types.Booking{}, m.bookings...), nil
}

// testEnv wires the full route tree against in-memory repositories.
type testEnv struct {
	router   *chi.Mux
	users    *memUserRepo
	packages *memPackageRepo
	bookings *memBookingRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newMemUserRepo()
	packages := newMemPackageRepo()
	bookings := newMemBookingRepo()

	userService := services.NewUserService(users)
	packageService := services.NewPackageService(packages)
	bookingService := services.NewBookingService(bookings, packages, nil)

	authMiddleware := auth.RequireAuth([]byte(testSecret))

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			AuthRouter(r, userService, testSecret, time.Hour)
		})
		r.Route("/packages", func(r chi.Router) {
			PackageRouter(r, packageService, nil, authMiddleware)
		})
		r.Route("/bookings", func(r chi.Router) {
			BookingRouter(r, bookingService, authMiddleware)
		})
		r.Route("/admin", func(r chi.Router) {
			AdminRouter(r, userService, packageService, bookingService, authMiddleware)
		})
	})

	return &testEnv{
		router:   router,
		users:    users,
		packages: packages,
		bookings: bookings,
	}
}

func (e *testEnv) token(t *testing.T, email, role string) string {
	t.Helper()
	token, err := auth.IssueToken([]byte(testSecret), email, role, "Test User", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func (e *testEnv) seedPackage(t *testing.T, pkg types.Package) types.Package {
	t.Helper()
	created, err := e.packages.Create(context.Background(), pkg)
	if err != nil {
		t.Fatalf("seed package: %v", err)
	}
	return created
}

func (e *testEnv) seedBooking(t *testing.T, booking types.Booking) types.Booking {
	t.Helper()
	created, err := e.bookings.Create(context.Background(), booking)
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return created
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

var _ services.UserRepository = (*memUserRepo)(nil)
var _ services.PackageRepository = (*memPackageRepo)(nil)
var _ services.BookingRepository = (*memBookingRepo)(nil)
