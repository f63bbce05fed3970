package metal_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infrarepo "github.com/benaja-bendo/Le-creuset-backend/infra/repository"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/internal/testutils"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	metalsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/metal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*metalsvc.Service, *gorm.DB) {
	t.Helper()
	db := testutils.NewTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return metalsvc.New(infrarepo.NewUoW(db), logger), db
}

func balanceOf(t *testing.T, db *gorm.DB, id uuid.UUID) decimal.Decimal {
	t.Helper()
	var a model.MetalAccount
	require.NoError(t, db.First(&a, "id = ?", id).Error)
	return a.Balance
}

func TestInitializeAccounts_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	u := testutils.CreateUser(t, db, "init@example.com")
	gold := testutils.CreateAccount(t, db, u.ID, metal.Gold, decimal.NewFromInt(12))

	opened, err := svc.InitializeAccounts(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, len(metal.Types())-1, opened)

	opened, err = svc.InitializeAccounts(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, opened)

	var count int64
	require.NoError(t, db.Model(&model.MetalAccount{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.EqualValues(t, len(metal.Types()), count)
	assert.True(t, balanceOf(t, db, gold.ID).Equal(decimal.NewFromInt(12)), "existing balance must survive")
}

func TestAddTransaction_BalanceMatchesLog(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	u := testutils.CreateUser(t, db, "fold@example.com")
	acc := testutils.CreateAccount(t, db, u.ID, metal.Silver, decimal.Zero)

	postings := []dto.MetalTransactionInput{
		{Type: metal.Credit, Amount: decimal.NewFromFloat(50.5), Label: "Dépôt"},
		{Type: metal.Debit, Amount: decimal.NewFromFloat(20.25), Label: "Commande"},
		{Type: metal.Debit, Amount: decimal.NewFromInt(40), Label: "Commande"},
		{Type: metal.Credit, Amount: decimal.NewFromFloat(0.125), Label: "Ajustement"},
	}
	for _, p := range postings {
		_, err := svc.AddTransaction(ctx, acc.ID, p)
		require.NoError(t, err)
	}

	var rows []model.MetalTransaction
	require.NoError(t, db.Where("account_id = ?", acc.ID).Find(&rows).Error)
	require.Len(t, rows, len(postings))
	txs := make([]metal.Transaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, metal.Transaction{Entry: metal.Entry{Type: metal.TransactionType(r.Type), Amount: r.Amount}})
	}

	got := balanceOf(t, db, acc.ID)
	assert.True(t, got.Equal(metal.Balance(txs)), "balance %s != fold %s", got, metal.Balance(txs))
	assert.True(t, got.Equal(decimal.NewFromFloat(-9.625)), "negative balances are allowed, got %s", got)
}

func TestAddTransaction_DecimalFractionsStayExact(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	u := testutils.CreateUser(t, db, "fractions@example.com")
	acc := testutils.CreateAccount(t, db, u.ID, metal.Gold, decimal.Zero)

	for _, amount := range []string{"0.1", "0.2"} {
		_, err := svc.AddTransaction(ctx, acc.ID, dto.MetalTransactionInput{
			Type: metal.Credit, Amount: decimal.RequireFromString(amount), Label: "Dépôt",
		})
		require.NoError(t, err)
	}
	assert.Equal(t, "0.3", balanceOf(t, db, acc.ID).String())

	_, err := svc.AddTransaction(ctx, acc.ID, dto.MetalTransactionInput{
		Type: metal.Debit, Amount: decimal.RequireFromString("0.7"), Label: "Coulée",
	})
	require.NoError(t, err)
	assert.Equal(t, "-0.4", balanceOf(t, db, acc.ID).String())

	accounts, err := svc.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "-0.4", accounts[0].Balance.String())
}

func TestAddTransaction_Errors(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	u := testutils.CreateUser(t, db, "errors@example.com")
	acc := testutils.CreateAccount(t, db, u.ID, metal.Gold, decimal.NewFromInt(5))

	_, err := svc.AddTransaction(ctx, uuid.New(), dto.MetalTransactionInput{
		Type: metal.Credit, Amount: decimal.NewFromInt(1), Label: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AddTransaction(ctx, acc.ID, dto.MetalTransactionInput{
		Type: metal.Debit, Amount: decimal.Zero, Label: "x",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddTransaction(ctx, acc.ID, dto.MetalTransactionInput{
		Type: metal.Credit, Amount: decimal.RequireFromString("0.0004"), Label: "x",
	})
	assert.ErrorIs(t, err, metal.ErrAmountTooPrecise)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, balanceOf(t, db, acc.ID).Equal(decimal.NewFromInt(5)))

	_, err = svc.AddTransaction(ctx, acc.ID, dto.MetalTransactionInput{
		Type: "REFUND", Amount: decimal.NewFromInt(1), Label: "x",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.True(t, balanceOf(t, db, acc.ID).Equal(decimal.NewFromInt(5)))
	var count int64
	require.NoError(t, db.Model(&model.MetalTransaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddTransaction_KeepsDate(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	u := testutils.CreateUser(t, db, "date@example.com")
	acc := testutils.CreateAccount(t, db, u.ID, metal.Platinum, decimal.Zero)
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tx, err := svc.AddTransaction(ctx, acc.ID, dto.MetalTransactionInput{
		Type: metal.Credit, Amount: decimal.NewFromInt(3), Label: "Dépôt", Date: &when,
	})
	require.NoError(t, err)
	assert.True(t, tx.Date.Equal(when))
	assert.Equal(t, "Dépôt", tx.Label)
}

func TestListForUser_RecentTransactions(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	u := testutils.CreateUser(t, db, "recent@example.com")
	acc := testutils.CreateAccount(t, db, u.ID, metal.Gold, decimal.Zero)
	testutils.CreateAccount(t, db, u.ID, metal.Silver, decimal.Zero)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		when := start.AddDate(0, 0, i)
		_, err := svc.AddTransaction(ctx, acc.ID, dto.MetalTransactionInput{
			Type: metal.Credit, Amount: decimal.NewFromInt(1), Label: "Dépôt", Date: &when,
		})
		require.NoError(t, err)
	}

	accounts, err := svc.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	for _, a := range accounts {
		if a.ID != acc.ID {
			assert.Empty(t, a.Transactions)
			continue
		}
		require.Len(t, a.Transactions, metalsvc.RecentTransactions)
		assert.True(t, a.Transactions[0].Date.Equal(start.AddDate(0, 0, 11)))
		assert.True(t, a.Balance.Equal(decimal.NewFromInt(12)))
	}
}

func TestListAll_LowestBalanceFirst(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	a := testutils.CreateUser(t, db, "a@example.com", testutils.WithCompany("Atelier A"))
	b := testutils.CreateUser(t, db, "b@example.com", testutils.WithCompany("Atelier B"))
	testutils.CreateAccount(t, db, a.ID, metal.Gold, decimal.NewFromInt(10))
	testutils.CreateAccount(t, db, b.ID, metal.Gold, decimal.NewFromInt(-4))

	accounts, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, b.ID, accounts[0].UserID)
	require.NotNil(t, accounts[0].User)
	assert.Equal(t, "Atelier B", accounts[0].User.CompanyName)
}
