// Package middleware holds the Fiber authentication and authorization
// handlers shared by the HTTP routes.
package middleware

import (
	"errors"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey     = "user"
	principalKey = "principal"
)

// JwtProtected verifies the bearer token and stores it in the request
// locals under "user".
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ContextKey:   tokenKey,
		ErrorHandler: jwtError,
	})
}

func jwtError(_ *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing or malformed JWT")
	}
	return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired JWT")
}

// Authorize resolves the caller from the verified token and rejects roles
// outside roles. With no roles any authenticated caller passes.
func Authorize(auth *authsvc.Service, roles ...user.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals(tokenKey).(*jwt.Token)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing or malformed JWT")
		}
		p, err := auth.Principal(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if len(roles) > 0 && !hasRole(p.Role, roles) {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		c.Locals(principalKey, p)
		return c.Next()
	}
}

// Protected chains JwtProtected and Authorize.
func Protected(cfg *config.Jwt, auth *authsvc.Service, roles ...user.Role) []fiber.Handler {
	return []fiber.Handler{JwtProtected(cfg), Authorize(auth, roles...)}
}

// CurrentPrincipal returns the caller stored by Authorize.
func CurrentPrincipal(c *fiber.Ctx) (*authsvc.Principal, bool) {
	p, ok := c.Locals(principalKey).(*authsvc.Principal)
	return p, ok && p != nil
}

func hasRole(role user.Role, allowed []user.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
