package initializer

import (
	"context"
	"log/slog"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	usersvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/user"
)

// SeedAdmin creates the bootstrap administrator when SEED_ADMIN_EMAIL is set.
// Existing accounts are left untouched.
func SeedAdmin(ctx context.Context, users *usersvc.Service, cfg *config.Seed, logger *slog.Logger) error {
	if cfg == nil || cfg.AdminEmail == "" {
		logger.Debug("Admin seed skipped")
		return nil
	}
	if cfg.AdminPassword == "" {
		logger.Warn("Admin seeded without password; it cannot log in until one is set", "email", cfg.AdminEmail)
	}
	created, err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
	if err != nil {
		return err
	}
	if !created {
		logger.Info("Admin already present", "email", cfg.AdminEmail)
	}
	return nil
}
