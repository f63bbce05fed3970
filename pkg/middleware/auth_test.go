package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwt = &config.Jwt{Secret: "middleware-secret", Expiry: time.Hour}

func newAuth() *authsvc.Service {
	return authsvc.New(nil, testJwt, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func tokenFor(t *testing.T, auth *authsvc.Service, role user.Role) string {
	t.Helper()
	tok, err := auth.GenerateToken(context.Background(), &dto.UserRead{
		ID: uuid.New(), Email: "someone@example.com", Role: role,
	})
	require.NoError(t, err)
	return tok
}

func newApp(auth *authsvc.Service, roles ...user.Role) *fiber.App {
	app := fiber.New()
	app.Get("/", append(Protected(testJwt, auth, roles...), func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(string(p.Role))
	})...)
	return app
}

func do(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProtected_Unauthorized(t *testing.T) {
	app := newApp(newAuth())
	resp := do(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, "not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_ForeignSignature(t *testing.T) {
	other := authsvc.New(nil, &config.Jwt{Secret: "other", Expiry: time.Hour}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	resp := do(t, newApp(newAuth()), tokenFor(t, other, user.RoleAdmin))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorize_Roles(t *testing.T) {
	auth := newAuth()
	adminOnly := newApp(auth, user.RoleAdmin)

	resp := do(t, adminOnly, tokenFor(t, auth, user.RoleClient))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = do(t, adminOnly, tokenFor(t, auth, user.RoleAdmin))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	anyone := newApp(auth)
	resp = do(t, anyone, tokenFor(t, auth, user.RoleClient))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "CLIENT", string(body))
}

func TestJwtError(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, assert.AnError)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
