package auth

import (
	"errors"

	"github.com/Aryan1212a/TripSync/types"
)

// Ownership failures. Both surface as 403 to callers but stay distinct
// internally for logging.
var (
	ErrNotOwner   = errors.New("not the package owner")
	ErrNotPending = errors.New("package is not pending")
)

// CanUpdatePackage decides whether the acting identity may edit pkg.
// Admins may edit anything; an agent may edit only packages they created.
// Callers must resolve existence first: a missing record is NotFound for
// everyone, regardless of ownership.
func CanUpdatePackage(claims Claims, pkg types.Package) error {
	if claims.Role == types.RoleAdmin {
		return nil
	}
	if pkg.CreatedBy != claims.Email {
		return ErrNotOwner
	}
	return nil
}

// CanDeletePackage decides whether the acting identity may delete pkg.
// Admins may delete unconditionally; an agent may delete only their own
// packages and only while the package is still pending.
func CanDeletePackage(claims Claims, pkg types.Package) error {
	if claims.Role == types.RoleAdmin {
		return nil
	}
	if pkg.CreatedBy != claims.Email {
		return ErrNotOwner
	}
	if pkg.Status != types.StatusPending {
		return ErrNotPending
	}
	return nil
}
