package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aryan1212a/TripSync/types"
)

func okHandler(t *testing.T, gotClaims *Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("claims missing from context: %v", err)
		}
		if gotClaims != nil {
			*gotClaims = claims
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	token, err := IssueToken(testSecret, "u@x.com", types.RoleTraveler, "U", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var claims Claims
	handler := RequireAuth(testSecret)(okHandler(t, &claims))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	if claims.Email != "u@x.com" || claims.Role != types.RoleTraveler {
		t.Errorf("context claims = %+v, want u@x.com/traveler", claims)
	}
}

func TestRequireRolesRejectsEveryOtherRole(t *testing.T) {
	allowed := []string{types.RoleAdmin}
	gate := RequireRoles(allowed...)

	for _, role := range []string{types.RoleTraveler, types.RoleTravelPartner, "unknown"} {
		token, err := IssueToken(testSecret, "u@x.com", role, "U", time.Hour)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}

		handler := RequireAuth(testSecret)(gate(okHandler(t, nil)))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("role %q: status = %d, want 403", role, rec.Code)
		}
	}
}

func TestRequireRolesAllowsMember(t *testing.T) {
	token, err := IssueToken(testSecret, "a@x.com", types.RoleAdmin, "A", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := RequireAuth(testSecret)(RequireRoles(types.RoleAdmin, types.RoleTravelPartner)(okHandler(t, nil)))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// RequireRoles without RequireAuth upstream means no claims in context;
// that is an authentication failure, not a role failure.
func TestRequireRolesWithoutClaims(t *testing.T) {
	handler := RequireRoles(types.RoleAdmin)(okHandler(t, nil))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
