package impl

import (
	"context"
	"log/slog"

	deliverycontext "nexstock/internal/delivery/context"
	"nexstock/internal/domain/entity"
	domainerrors "nexstock/internal/domain/errors"
	"nexstock/internal/domain/repository"
	"nexstock/internal/domain/service"
	"nexstock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncSignIn creates the user document on first sign-in and refreshes only
// lastLogin afterwards; role and organization are always preserved.
func (srv *userService) SyncSignIn(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, identity.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return srv.createDefaultUser(ctx, identity)
	}
	if err != nil {
		return nil, domainerrors.ErrStoreRead.WithDetails(err.Error())
	}

	if err := srv.userRepo.TouchLastLogin(ctx, identity.Subject); err != nil {
		srv.log(ctx).Warn("Failed to refresh last login", slog.String("userID", identity.Subject), slog.Any("error", err))
	}

	return user, nil
}

// EnsureUser loads or lazily creates the user document without touching
// lastLogin.
func (srv *userService) EnsureUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, identity.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return srv.createDefaultUser(ctx, identity)
	}
	if err != nil {
		return nil, domainerrors.ErrStoreRead.WithDetails(err.Error())
	}

	return user, nil
}

func (srv *userService) SetRole(ctx context.Context, userID string, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid role " + role.String())
	}

	srv.log(ctx).Info("Updating user role", slog.String("userID", userID), slog.Any("role", role))

	if err := srv.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user " + userID)
		}

		return domainerrors.ErrStoreWrite.WithDetails(err.Error())
	}

	return nil
}

func (srv *userService) createDefaultUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	srv.log(ctx).Info("Creating user on first sign-in", slog.String("userID", identity.Subject))

	displayName := identity.DisplayName
	if displayName == "" {
		displayName = "Anonymous"
	}

	user := &entity.User{
		ID:             identity.Subject,
		Email:          identity.Email,
		DisplayName:    displayName,
		PhotoURL:       identity.PhotoURL,
		Role:           entity.RoleViewer,
		OrganizationID: entity.DefaultOrganizationID,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("userID", identity.Subject), slog.Any("error", err))

		return nil, domainerrors.ErrStoreWrite.WithDetails(err.Error())
	}

	// Re-read so the caller sees the server-assigned lastLogin.
	created, err := srv.userRepo.FindByID(ctx, identity.Subject)
	if err != nil {
		return user, nil
	}

	return created, nil
}
