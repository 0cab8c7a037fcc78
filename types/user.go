package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles understood by the role gate.
const (
	RoleTraveler      = "traveler"
	RoleTravelPartner = "travel_partner"
	RoleAdmin         = "admin"
)

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleTraveler, RoleTravelPartner, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user, assigned by the store.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Name is the user's display or full name.
	Name string `json:"name" bson:"name"`

	// Email is the user's email address. It is the login identifier and
	// must be unique; matching is exact (case-sensitive).
	Email string `json:"email" bson:"email"`

	// Role indicates the user's authorization level
	// ("traveler", "travel_partner", or "admin").
	Role string `json:"role" bson:"role"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" bson:"password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
