package firestore

import (
	"context"
	"time"

	"nexstock/internal/domain/entity"
	"nexstock/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client *fs.Client
}

// NewUserRepository creates a Firestore-backed UserRepository. User document
// ids equal the identity-provider subject.
func NewUserRepository(client *fs.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) users() *fs.CollectionRef {
	return r.client.Collection(colUsers)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	user := decodeUser(doc.Ref.ID, doc.Data())

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.users().Doc(user.ID).Set(ctx, map[string]any{
		"email":          user.Email,
		"displayName":    user.DisplayName,
		"photoURL":       user.PhotoURL,
		"role":           user.Role.String(),
		"organizationId": user.OrganizationID,
		"lastLogin":      fs.ServerTimestamp,
	}); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id string) error {
	if _, err := r.users().Doc(id).Update(ctx, []fs.Update{
		{Path: "lastLogin", Value: fs.ServerTimestamp},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to touch last login")
	}

	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	if _, err := r.users().Doc(id).Update(ctx, []fs.Update{
		{Path: "role", Value: role.String()},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update role")
	}

	return nil
}

// decodeUser tolerates missing fields the same way the item normalizer does,
// but user documents are only ever written by this service so suffixed-key
// repair is not needed here.
func decodeUser(id string, raw map[string]any) entity.User {
	user := entity.User{
		ID:             id,
		Role:           entity.RoleViewer,
		OrganizationID: entity.DefaultOrganizationID,
	}

	if v, ok := raw["email"].(string); ok {
		user.Email = v
	}
	if v, ok := raw["displayName"].(string); ok {
		user.DisplayName = v
	}
	if v, ok := raw["photoURL"].(string); ok {
		user.PhotoURL = v
	}
	if v, ok := raw["role"].(string); ok && entity.Role(v).IsValid() {
		user.Role = entity.Role(v)
	}
	if v, ok := raw["organizationId"].(string); ok && v != "" {
		user.OrganizationID = v
	}
	if v, ok := raw["lastLogin"].(time.Time); ok {
		user.LastLogin = v
	}

	return user
}
