package service

import "context"

// Identity is the shape the external identity provider yields for a verified
// sign-in token.
type Identity struct {
	Subject     string
	Email       string
	DisplayName string
	PhotoURL    string
}

// IdentityVerifier validates a bearer token from the identity provider and
// returns the identity it asserts. Verification failures are authentication
// errors; the provider itself is an external collaborator.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
