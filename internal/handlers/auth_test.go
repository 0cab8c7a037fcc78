package handlers

import (
	"net/http"
	"testing"

	"github.com/Aryan1212a/TripSync/internal/auth"
	"github.com/Aryan1212a/TripSync/types"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Asha",
		Email:    "asha@x.com",
		Password: "pw123456",
		Role:     types.RoleTraveler,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "asha@x.com",
		Password: "pw123456",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp LoginResponse
	decodeJSON(t, rec, &resp)
	if resp.TokenType != "bearer" || resp.Role != types.RoleTraveler || resp.Email != "asha@x.com" {
		t.Errorf("unexpected login response: %+v", resp)
	}

	claims, err := auth.ParseClaims(resp.AccessToken, []byte(testSecret))
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims.Email != "asha@x.com" || claims.Name != "Asha" {
		t.Errorf("claims = %+v, want asha@x.com/Asha", claims)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	env := newTestEnv(t)

	first := env.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "A", Email: "a@x.com", Password: "pw", Role: types.RoleTraveler,
	})
	if first.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", first.Code)
	}

	second := env.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "A2", Email: "a@x.com", Password: "pw2", Role: types.RoleTraveler,
	})
	if second.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", second.Code)
	}
}

// Unknown email and wrong password must be indistinguishable to the
// caller, otherwise login becomes an account enumeration oracle.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "B", Email: "b@x.com", Password: "correct", Role: types.RoleTraveler,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}

	wrongPassword := env.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "b@x.com", Password: "wrong",
	})
	unknownEmail := env.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "nobody@x.com", Password: "whatever",
	})

	if wrongPassword.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", wrongPassword.Code)
	}
	if unknownEmail.Code != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d, want 401", unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("login error bodies differ: %q vs %q",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

// The original system stores whatever role the caller asks for, admin
// included. Preserved behavior, flagged in the design notes.
func TestRegisterStoresRequestedRole(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "P", Email: "partner@x.com", Password: "pw", Role: types.RoleTravelPartner,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "partner@x.com", Password: "pw",
	})
	var resp LoginResponse
	decodeJSON(t, rec, &resp)
	if resp.Role != types.RoleTravelPartner {
		t.Errorf("role = %q, want travel_partner", resp.Role)
	}
}

// Password hashes must never leak on any read path, admin listing
// included.
func TestUserListingRedactsPasswordHash(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "C", Email: "c@x.com", Password: "secretpw", Role: types.RoleTraveler,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}

	admin := env.token(t, "admin@x.com", types.RoleAdmin)
	rec = env.do(t, http.MethodGet, "/api/admin/users", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list users status = %d", rec.Code)
	}

	var users []map[string]any
	decodeJSON(t, rec, &users)
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	for _, key := range []string{"password", "password_hash", "PasswordHash"} {
		if _, ok := users[0][key]; ok {
			t.Errorf("user payload leaks %q", key)
		}
	}
	if users[0]["email"] != "c@x.com" {
		t.Errorf("email = %v, want c@x.com", users[0]["email"])
	}
}
