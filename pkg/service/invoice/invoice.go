// Package invoice provides invoice issuance and listings.
package invoice

import (
	"context"
	"log/slog"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/invoice"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/order"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for invoices.
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

// Create issues a standalone invoice for an existing order and user.
func (s *Service) Create(ctx context.Context, in dto.InvoiceIssue) (read *dto.InvoiceRead, err error) {
	log := s.logger.With("orderID", in.OrderID, "invoiceNumber", in.InvoiceNumber)
	var issueDate time.Time
	if in.IssueDate != nil {
		issueDate = *in.IssueDate
	}
	inv, err := invoice.New(in.InvoiceNumber, in.OrderID, in.UserID, in.FileURL, in.Amount, issueDate, in.Notes)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		orders, err := uow.OrderRepository()
		if err != nil {
			return err
		}
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		invoices, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		o, err := orders.Get(ctx, inv.OrderID)
		if err != nil {
			return err
		}
		if o == nil {
			return order.ErrOrderNotFound
		}
		exists, err := users.Exists(ctx, inv.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrUserNotFound
		}
		if err := invoices.Create(ctx, &dto.InvoiceCreate{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			OrderID:       inv.OrderID,
			UserID:        inv.UserID,
			FileURL:       inv.FileURL,
			Amount:        inv.Amount,
			IssueDate:     inv.IssueDate,
			Notes:         inv.Notes,
		}); err != nil {
			return err
		}
		read, err = invoices.Get(ctx, inv.ID)
		return err
	})
	if err != nil {
		log.Error("Failed to issue invoice", "error", err)
		return nil, err
	}
	log.Info("Invoice issued", "invoiceID", inv.ID)
	return read, nil
}

// Get returns an invoice with its owner.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (read *dto.InvoiceRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		read, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if read == nil {
			return invoice.ErrInvoiceNotFound
		}
		return nil
	})
	return read, err
}

// ListAll returns every invoice with its owner, newest first.
func (s *Service) ListAll(ctx context.Context) ([]*dto.InvoiceRead, error) {
	return s.list(ctx, func(ctx context.Context, repo invoiceLister) ([]*dto.InvoiceRead, error) {
		return repo.ListAll(ctx)
	})
}

// ListByUser returns the invoices of userID, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.InvoiceRead, error) {
	return s.list(ctx, func(ctx context.Context, repo invoiceLister) ([]*dto.InvoiceRead, error) {
		return repo.ListByUser(ctx, userID)
	})
}

// ListByOrder returns the invoices issued for orderID.
func (s *Service) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*dto.InvoiceRead, error) {
	return s.list(ctx, func(ctx context.Context, repo invoiceLister) ([]*dto.InvoiceRead, error) {
		return repo.ListByOrder(ctx, orderID)
	})
}

// CountByUser returns how many invoices userID holds.
func (s *Service) CountByUser(ctx context.Context, userID uuid.UUID) (count int64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		count, err = repo.CountByUser(ctx, userID)
		return err
	})
	return count, err
}

// Delete removes an invoice.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return invoice.ErrInvoiceNotFound
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("Failed to delete invoice", "invoiceID", id, "error", err)
		return err
	}
	s.logger.Info("Invoice deleted", "invoiceID", id)
	return nil
}

type invoiceLister interface {
	ListAll(ctx context.Context) ([]*dto.InvoiceRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.InvoiceRead, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*dto.InvoiceRead, error)
}

func (s *Service) list(
	ctx context.Context,
	query func(context.Context, invoiceLister) ([]*dto.InvoiceRead, error),
) (invoices []*dto.InvoiceRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		invoices, err = query(ctx, repo)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to list invoices", "error", err)
		return nil, err
	}
	return invoices, nil
}
