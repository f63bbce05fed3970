package mold_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	infrarepo "github.com/benaja-bendo/Le-creuset-backend/infra/repository"
	"github.com/benaja-bendo/Le-creuset-backend/internal/testutils"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	moldsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/mold"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoldRegistry(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	svc := moldsvc.New(infrarepo.NewUoW(db), slog.New(slog.NewTextHandler(io.Discard, nil)))
	zeta := testutils.CreateUser(t, db, "zeta@example.com", testutils.WithCompany("Zeta Joaillerie"))
	alpha := testutils.CreateUser(t, db, "alpha@example.com", testutils.WithCompany("Alpha Bijoux"))

	_, err := svc.Create(ctx, zeta.ID, "Z-01", "Solitaire", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, zeta.ID, "Z-02", "Alliance", nil)
	require.NoError(t, err)
	photo := "/api/storage/file/chevaliere.jpg"
	created, err := svc.Create(ctx, alpha.ID, "A-01", "Chevalière", &photo)
	require.NoError(t, err)
	assert.Equal(t, &photo, created.PhotoURL)

	mine, err := svc.ListByUser(ctx, zeta.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Alliance", mine[0].Name)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "Alpha Bijoux", all[0].User.CompanyName)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	svc := moldsvc.New(infrarepo.NewUoW(db), slog.New(slog.NewTextHandler(io.Discard, nil)))
	u := testutils.CreateUser(t, db, "molds@example.com")

	_, err := svc.Create(ctx, u.ID, "", "Bague", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(ctx, uuid.New(), "R-1", "Bague", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
