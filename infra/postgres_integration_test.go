package infra_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/infra"
	infrarepo "github.com/benaja-bendo/Le-creuset-backend/infra/repository"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/internal/testutils"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	metalsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/metal"
	ordersvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// startPostgres runs a throwaway Postgres, applies the SQL migrations and
// returns a connection to it.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()
	container, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("creuset"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cnf := &config.DB{Url: dsn, Migrations: true}
	db, err := infra.NewDBConnection(cnf, "test")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db, cnf, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return db
}

func TestPostgres_CloseOrderAndConcurrentPostings(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uow := infrarepo.NewUoW(db)
	orders := ordersvc.New(uow, nil, nil, logger)
	metals := metalsvc.New(uow, logger)

	client := testutils.CreateUser(t, db, "fonderie@example.com")
	gold := testutils.CreateAccount(t, db, client.ID, metal.Gold, decimal.NewFromInt(10))
	o := testutils.CreateOrder(t, db, client.ID, "FINISHING")

	weight := decimal.RequireFromString("4.5")
	amount := decimal.RequireFromString("480.00")
	gt := metal.Gold
	res, err := orders.Close(ctx, o.ID, dto.OrderClose{
		InvoiceNumber:      "F-2024-001",
		InvoiceFileURL:     "/api/storage/file/f.pdf",
		FinalAmount:        &amount,
		FinalWeight:        &weight,
		DebitWeightAccount: true,
		MetalType:          &gt,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Transaction)
	assert.Equal(t, "SHIPPED", string(res.Order.Status))

	const workers = 5
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := metals.AddTransaction(ctx, gold.ID, dto.MetalTransactionInput{
				Type:   metal.Debit,
				Amount: decimal.NewFromInt(1),
				Label:  "Coulée",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var acc model.MetalAccount
	require.NoError(t, db.First(&acc, "id = ?", gold.ID).Error)
	assert.True(t, decimal.RequireFromString("0.5").Equal(acc.Balance), acc.Balance.String())

	var txCount int64
	require.NoError(t, db.Model(&model.MetalTransaction{}).Where("account_id = ?", gold.ID).Count(&txCount).Error)
	assert.EqualValues(t, workers+1, txCount)
}
