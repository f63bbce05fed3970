// Package webapi provides the HTTP surface of the casting back office.
// It is organized into sub-packages for different domains:
// - auth: registration, login and logout
// - user: profiles and account review
// - order: orders and the closing workflow
// - invoice: invoices
// - mold: client molds
// - weight: metal weight accounts
// - storage: uploads and downloads
package webapi

import (
	"errors"
	"strings"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/app"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/metrics"
	authweb "github.com/benaja-bendo/Le-creuset-backend/webapi/auth"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	invoiceweb "github.com/benaja-bendo/Le-creuset-backend/webapi/invoice"
	moldweb "github.com/benaja-bendo/Le-creuset-backend/webapi/mold"
	orderweb "github.com/benaja-bendo/Le-creuset-backend/webapi/order"
	storageweb "github.com/benaja-bendo/Le-creuset-backend/webapi/storage"
	userweb "github.com/benaja-bendo/Le-creuset-backend/webapi/user"
	weightweb "github.com/benaja-bendo/Le-creuset-backend/webapi/weight"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIPrefix is the prefix of every domain route.
const APIPrefix = "/api"

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	cfg := app.Config

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: common.ErrorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CorsOrigin,
		// Credentials cannot be combined with a wildcard origin.
		AllowCredentials: cfg.Server.CorsOrigin != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
	}))
	fiberApp.Use(metrics.Middleware())

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	fiberApp.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := fiberApp.Group(APIPrefix)
	authweb.Routes(api, app.AuthService, app.UserService, cfg)
	userweb.Routes(api, app.UserService, app.AuthService, cfg)
	orderweb.Routes(api, app.OrderService, app.AuthService, cfg)
	invoiceweb.Routes(api, app.InvoiceService, app.OrderService, app.AuthService, cfg)
	moldweb.Routes(api, app.MoldService, app.AuthService, cfg)
	weightweb.Routes(api, app.MetalService, app.AuthService, cfg)
	storageweb.Routes(api, app.Deps.Store, app.AuthService, cfg)
	return fiberApp
}
