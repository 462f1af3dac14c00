package usecase

import (
	"context"

	"nexstock/internal/domain/entity"
	"nexstock/internal/domain/service"
)

// UserUsecase manages the application-side mirror of identity-provider
// subjects.
type UserUsecase interface {
	// SyncSignIn is called once per interactive sign-in. First sign-in
	// creates the user document with the viewer role and the default
	// organization; every later sign-in refreshes lastLogin only, preserving
	// all other fields.
	SyncSignIn(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// EnsureUser loads the user for a verified identity, creating the
	// default document when it does not exist yet. Unlike SyncSignIn it
	// never touches lastLogin, so it is safe to call on every request.
	EnsureUser(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// SetRole assigns a new role to the target user.
	SetRole(ctx context.Context, userID string, role entity.Role) error
}
