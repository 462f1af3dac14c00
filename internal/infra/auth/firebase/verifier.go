// Package firebase adapts Firebase Auth to the domain IdentityVerifier
// contract. Token issuance, refresh and the interactive sign-in flow all
// live with the provider; this side only verifies ID tokens.
package firebase

import (
	"context"

	"nexstock/config"
	"nexstock/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type identityVerifier struct {
	client *firebaseauth.Client
}

// NewIdentityVerifier creates an IdentityVerifier backed by Firebase Auth.
func NewIdentityVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: cfg.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &identityVerifier{client: client}, nil
}

// VerifyToken validates the ID token signature and expiry and maps the
// standard claims onto the domain identity shape.
func (v *identityVerifier) VerifyToken(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	identity := &service.Identity{Subject: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}

	return identity, nil
}
