package invoice_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infrarepo "github.com/benaja-bendo/Le-creuset-backend/infra/repository"
	"github.com/benaja-bendo/Le-creuset-backend/internal/testutils"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/invoice"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/order"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	invoicesvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/invoice"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	svc := invoicesvc.New(infrarepo.NewUoW(db), slog.New(slog.NewTextHandler(io.Discard, nil)))
	u := testutils.CreateUser(t, db, "billing@example.com", testutils.WithCompany("Bijoux SARL"))
	o := testutils.CreateOrder(t, db, u.ID, string(order.StatusShipped))

	amount := decimal.NewFromFloat(125.5)
	issued := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	notes := "Acompte"
	inv, err := svc.Create(ctx, dto.InvoiceIssue{
		InvoiceNumber: "FAC-10",
		OrderID:       o.ID,
		UserID:        u.ID,
		FileURL:       "/api/storage/file/fac-10.pdf",
		Amount:        &amount,
		IssueDate:     &issued,
		Notes:         &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "FAC-10", inv.InvoiceNumber)
	assert.True(t, inv.IssueDate.Equal(issued))
	require.NotNil(t, inv.User)
	assert.Equal(t, "Bijoux SARL", inv.User.CompanyName)

	got, err := svc.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Amount)
	assert.True(t, got.Amount.Equal(amount))

	byUser, err := svc.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)
	byOrder, err := svc.ListByOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Len(t, byOrder, 1)
	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	count, err := svc.CountByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.Delete(ctx, inv.ID))
	_, err = svc.Get(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, inv.ID), domain.ErrNotFound)
}

func TestCreate_RequiresExistingOrderAndUser(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	svc := invoicesvc.New(infrarepo.NewUoW(db), slog.New(slog.NewTextHandler(io.Discard, nil)))
	u := testutils.CreateUser(t, db, "refs@example.com")
	o := testutils.CreateOrder(t, db, u.ID, string(order.StatusPending))

	_, err := svc.Create(ctx, dto.InvoiceIssue{
		InvoiceNumber: "FAC-1", OrderID: uuid.New(), UserID: u.ID, FileURL: "/api/f.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Create(ctx, dto.InvoiceIssue{
		InvoiceNumber: "FAC-1", OrderID: o.ID, UserID: uuid.New(), FileURL: "/api/f.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Create(ctx, dto.InvoiceIssue{
		InvoiceNumber: " ", OrderID: o.ID, UserID: u.ID, FileURL: "/api/f.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	tooPrecise := decimal.RequireFromString("1.005")
	_, err = svc.Create(ctx, dto.InvoiceIssue{
		InvoiceNumber: "FAC-2", OrderID: o.ID, UserID: u.ID, FileURL: "/api/f.pdf", Amount: &tooPrecise,
	})
	assert.ErrorIs(t, err, invoice.ErrAmountTooPrecise)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
