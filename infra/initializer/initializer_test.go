package initializer_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/benaja-bendo/Le-creuset-backend/infra/initializer"
	infrarepo "github.com/benaja-bendo/Le-creuset-backend/infra/repository"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/internal/testutils"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	usersvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger := initializer.SetupLogger(&config.Log{Format: "json", Level: 0}, &buf)
	logger.Info("order closed", "orderID", "abc")
	assert.Contains(t, buf.String(), `"msg":"order closed"`)
	assert.Contains(t, buf.String(), `"orderID":"abc"`)

	buf.Reset()
	logger = initializer.SetupLogger(&config.Log{Format: "logfmt"}, &buf)
	logger.Warn("slow query", "table", "orders")
	assert.Contains(t, buf.String(), "table=orders")

	buf.Reset()
	logger = initializer.SetupLogger(&config.Log{Format: "json", Level: 8}, &buf)
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := usersvc.New(infrarepo.NewUoW(db), nil, &config.Mail{}, logger)

	require.NoError(t, initializer.SeedAdmin(ctx, users, nil, logger))
	require.NoError(t, initializer.SeedAdmin(ctx, users, &config.Seed{}, logger))
	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)

	seed := &config.Seed{AdminEmail: "root@lecreuset.fr", AdminPassword: "Sup3rSecret!", AdminName: "Root"}
	require.NoError(t, initializer.SeedAdmin(ctx, users, seed, logger))
	require.NoError(t, initializer.SeedAdmin(ctx, users, seed, logger))

	var admins []model.User
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "ADMIN", string(admins[0].Role))
	assert.Equal(t, "ACTIVE", string(admins[0].Status))
}
