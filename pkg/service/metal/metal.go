// Package metal provides the metal weight ledger: account opening,
// manual postings and balance listings.
package metal

import (
	"context"
	"log/slog"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/metrics"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	"github.com/google/uuid"
)

// RecentTransactions is how many ledger entries ListForUser returns per account.
const RecentTransactions = 10

// Service provides business logic for metal accounts.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// InitializeAccounts opens the accounts userID is missing, one per metal,
// with a zero balance. Existing accounts are left untouched.
func (s *Service) InitializeAccounts(
	ctx context.Context,
	userID uuid.UUID,
) (opened int, err error) {
	log := s.logger.With("userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		opened, err = OpenAccounts(ctx, uow, userID)
		return err
	})
	if err != nil {
		log.Error("Failed to initialize metal accounts", "error", err)
		return 0, err
	}
	log.Info("Metal accounts initialized", "opened", opened)
	return opened, nil
}

// OpenAccounts is InitializeAccounts bound to the caller's unit of work.
func OpenAccounts(
	ctx context.Context,
	uow repository.UnitOfWork,
	userID uuid.UUID,
) (int, error) {
	repo, err := uow.MetalAccountRepository()
	if err != nil {
		return 0, err
	}
	existing, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	held := make(map[metal.Type]bool, len(existing))
	for _, a := range existing {
		held[a.MetalType] = true
	}
	opened := 0
	for _, t := range metal.Types() {
		if held[t] {
			continue
		}
		a := metal.NewAccount(userID, t)
		if err := repo.Create(ctx, &dto.MetalAccountCreate{
			ID:        a.ID,
			UserID:    a.UserID,
			MetalType: a.MetalType,
			Balance:   a.Balance,
		}); err != nil {
			return opened, err
		}
		opened++
	}
	return opened, nil
}

// AddTransaction posts a manual CREDIT or DEBIT on an account and moves
// its balance accordingly.
func (s *Service) AddTransaction(
	ctx context.Context,
	accountID uuid.UUID,
	input dto.MetalTransactionInput,
) (tx *dto.MetalTransactionRead, err error) {
	log := s.logger.With("accountID", accountID, "type", input.Type)
	var date time.Time
	if input.Date != nil {
		date = *input.Date
	}
	entry, err := metal.NewEntry(input.Type, input.Amount, input.Label, date)
	if err != nil {
		log.Warn("Rejected ledger posting", "error", err)
		return nil, err
	}
	var account *dto.MetalAccountRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		account, tx, err = Post(ctx, uow, accountID, entry)
		return err
	})
	if err != nil {
		log.Error("Failed to post ledger entry", "error", err)
		return nil, err
	}
	metrics.RecordLedgerPosting(string(account.MetalType), string(entry.Type))
	log.Info("Ledger entry posted", "amount", entry.Amount.String())
	return tx, nil
}

// Post appends entry to the account log and moves the balance inside the
// caller's unit of work. The account row stays locked until the unit of work
// ends. It returns the account as it was before the posting.
func Post(
	ctx context.Context,
	uow repository.UnitOfWork,
	accountID uuid.UUID,
	entry metal.Entry,
) (*dto.MetalAccountRead, *dto.MetalTransactionRead, error) {
	accounts, err := uow.MetalAccountRepository()
	if err != nil {
		return nil, nil, err
	}
	transactions, err := uow.MetalTransactionRepository()
	if err != nil {
		return nil, nil, err
	}
	account, err := accounts.GetForUpdate(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, metal.ErrAccountNotFound
	}

	ledger := &metal.Account{
		ID:         account.ID,
		UserID:     account.UserID,
		MetalType:  account.MetalType,
		Balance:    account.Balance,
		LastUpdate: account.LastUpdate,
	}
	posted := ledger.Apply(entry)
	create := &dto.MetalTransactionCreate{
		ID:        posted.ID,
		AccountID: posted.AccountID,
		Type:      posted.Type,
		Amount:    posted.Amount,
		Label:     posted.Label,
		Date:      posted.Date,
	}
	if err := transactions.Create(ctx, create); err != nil {
		return nil, nil, err
	}
	if err := accounts.SetBalance(ctx, ledger.ID, ledger.Balance, ledger.LastUpdate); err != nil {
		return nil, nil, err
	}
	return account, &dto.MetalTransactionRead{
		ID:        create.ID,
		AccountID: create.AccountID,
		Type:      create.Type,
		Amount:    create.Amount,
		Label:     create.Label,
		Date:      create.Date,
	}, nil
}

// ListForUser returns the accounts of userID, each with its most recent
// transactions, newest first.
func (s *Service) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) (accounts []*dto.MetalAccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.MetalAccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.MetalTransactionRepository()
		if err != nil {
			return err
		}
		accounts, err = accountRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, a := range accounts {
			recent, err := txRepo.ListRecent(ctx, a.ID, RecentTransactions)
			if err != nil {
				return err
			}
			a.Transactions = recent
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to list metal accounts", "userID", userID, "error", err)
		return nil, err
	}
	return accounts, nil
}

// ListAll returns every account with its owner, lowest balance first.
func (s *Service) ListAll(ctx context.Context) (accounts []*dto.MetalAccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MetalAccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.ListAll(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to list all metal accounts", "error", err)
		return nil, err
	}
	return accounts, nil
}
