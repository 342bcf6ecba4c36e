package usecase

import (
	"errors"
	"quotation_service/internal/domain/entities"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrAccessDenied    = errors.New("access denied")
)

// RequireRole is the single authorization capability check every admin-only
// operation runs before touching the store.
func RequireRole(caller entities.Caller, role entities.Role) error {
	if caller.UserID == "" {
		return ErrUnauthenticated
	}
	if caller.Role != role {
		return ErrAccessDenied
	}
	return nil
}

// requireOwnerOrAdmin allows admins and the user who created the resource.
func requireOwnerOrAdmin(caller entities.Caller, ownerID string) error {
	if caller.UserID == "" {
		return ErrUnauthenticated
	}
	if caller.IsAdmin() || caller.UserID == ownerID {
		return nil
	}
	return ErrAccessDenied
}
