package impl

import (
	"context"
	"testing"
	"time"

	"nexstock/internal/domain/entity"
	domainerrors "nexstock/internal/domain/errors"
	"nexstock/internal/domain/repository"
	"nexstock/internal/domain/service"
	mockRepo "nexstock/internal/mocks/repository"
	"nexstock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newTestLogger(),
	})

	return userServiceFixtures{
		service:  svc,
		userRepo: userRepo,
	}
}

func testIdentity() *service.Identity {
	return &service.Identity{
		Subject:     "uid-1",
		Email:       "casey@example.com",
		DisplayName: "Casey Doe",
		PhotoURL:    "https://example.com/p.png",
	}
}

func TestUserService_SyncSignIn_FirstSignInCreatesViewer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	identity := testIdentity()
	created := &entity.User{
		ID:             "uid-1",
		Email:          "casey@example.com",
		DisplayName:    "Casey Doe",
		Role:           entity.RoleViewer,
		OrganizationID: entity.DefaultOrganizationID,
		LastLogin:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(nil, repository.ErrUserNotFound).
		Once()

	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.ID == "uid-1" &&
				user.Role == entity.RoleViewer &&
				user.OrganizationID == entity.DefaultOrganizationID &&
				user.DisplayName == "Casey Doe"
		})).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(created, nil).
		Once()

	user, err := fx.service.SyncSignIn(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, created, user)
}

func TestUserService_SyncSignIn_EmptyDisplayNameFallsBack(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	identity := &service.Identity{Subject: "uid-2", Email: "anon@example.com"}

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-2").
		Return(nil, repository.ErrUserNotFound).
		Once()

	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.DisplayName == "Anonymous"
		})).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-2").
		Return(&entity.User{ID: "uid-2", DisplayName: "Anonymous"}, nil).
		Once()

	user, err := fx.service.SyncSignIn(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", user.DisplayName)
}

func TestUserService_SyncSignIn_ExistingUserOnlyTouchesLastLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:             "uid-1",
		DisplayName:    "Casey Doe",
		Role:           entity.RoleManager,
		OrganizationID: "org-9",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(existing, nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, "uid-1").
		Return(nil)

	// No Create expectation: role and organization must be preserved.
	user, err := fx.service.SyncSignIn(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, user.Role)
	assert.Equal(t, "org-9", user.OrganizationID)
}

func TestUserService_SyncSignIn_TouchFailureStillReturnsUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: "uid-1", Role: entity.RoleViewer}

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(existing, nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, "uid-1").
		Return(errors.New("unavailable"))

	user, err := fx.service.SyncSignIn(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, existing, user)
}

func TestUserService_EnsureUser_ExistingUserNotTouched(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: "uid-1", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(existing, nil)

	// No TouchLastLogin expectation: EnsureUser is a read path.
	user, err := fx.service.EnsureUser(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, existing, user)
}

func TestUserService_SetRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		UpdateRole(ctx, "uid-1", entity.RoleManager).
		Return(nil)

	require.NoError(t, fx.service.SetRole(ctx, "uid-1", entity.RoleManager))
}

func TestUserService_SetRole_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.SetRole(context.Background(), "uid-1", entity.Role("superuser"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SetRole_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		UpdateRole(ctx, "missing", entity.RoleAdmin).
		Return(repository.ErrUserNotFound)

	err := fx.service.SetRole(ctx, "missing", entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
