package middleware

import (
	"strings"

	"nexstock/internal/delivery/http/response"
	"nexstock/internal/domain/entity"
	"nexstock/internal/domain/service"
	"nexstock/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// keyUser is the echo.Context key carrying the authenticated user.
	keyUser = "user"
	// keyIdentity is the echo.Context key carrying the verified identity.
	keyIdentity = "identity"
)

// AuthMiddleware verifies identity-provider bearer tokens and resolves the
// application user for each request.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	userSvc  usecase.UserUsecase
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	UserSvc  usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier, userSvc: params.UserSvc}
}

// Authenticate validates the bearer token and loads (or lazily creates) the
// user document, making both available to handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_FAILED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "AUTH_FAILED", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			return response.Unauthorized(c, "AUTH_FAILED", "Invalid or expired token")
		}

		user, err := m.userSvc.EnsureUser(ctx, identity)
		if err != nil {
			return err
		}

		c.Set(keyUser, user)
		c.Set(keyIdentity, identity)

		return next(c)
	}
}

// RequireMutator restricts the route to roles that may mutate inventory
// (admin or manager). Must be used after Authenticate.
func (m *AuthMiddleware) RequireMutator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: user information missing")
		}

		if !user.Role.CanMutateInventory() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires admin or manager role")
		}

		return next(c)
	}
}

// RequireAdmin restricts the route to the admin role. Must be used after
// Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: user information missing")
		}

		if user.Role != entity.RoleAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires admin role")
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated user set by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyUser).(*entity.User)

	return user, ok
}

// CurrentIdentity returns the verified identity set by Authenticate.
func CurrentIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*service.Identity)

	return identity, ok
}
