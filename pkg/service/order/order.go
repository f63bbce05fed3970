// Package order provides the order lifecycle, including the closing
// workflow that issues the invoice and debits the metal ledger.
package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/invoice"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/order"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/metrics"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/notify"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	metalsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/metal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides business logic for orders.
type Service struct {
	uow      repository.UnitOfWork
	notifier notify.Notifier
	mail     *config.Mail
	logger   *slog.Logger
}

// New creates a new Service.
func New(
	uow repository.UnitOfWork,
	notifier notify.Notifier,
	mail *config.Mail,
	logger *slog.Logger,
) *Service {
	if mail == nil {
		mail = &config.Mail{}
	}
	return &Service{
		uow:      uow,
		notifier: notifier,
		mail:     mail,
		logger:   logger,
	}
}

// Create places a PENDING order for userID.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	stlFileURL *string,
	estimatedPrice *decimal.Decimal,
) (read *dto.OrderRead, err error) {
	log := s.logger.With("userID", userID)
	o, err := order.New(userID, stlFileURL, estimatedPrice)
	if err != nil {
		log.Warn("Rejected order", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.OrderRepository()
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, &dto.OrderCreate{
			ID:             o.ID,
			UserID:         o.UserID,
			StlFileURL:     o.StlFileURL,
			EstimatedPrice: o.EstimatedPrice,
			Status:         o.Status,
		}); err != nil {
			return err
		}
		read, err = repo.Get(ctx, o.ID)
		return err
	})
	if err != nil {
		log.Error("Failed to create order", "error", err)
		return nil, err
	}
	log.Info("Order created", "orderID", o.ID)
	return read, nil
}

// SetStatus moves an order to any lifecycle stage.
func (s *Service) SetStatus(
	ctx context.Context,
	id uuid.UUID,
	status order.Status,
) (read *dto.OrderRead, err error) {
	log := s.logger.With("orderID", id, "status", status)
	if _, err := order.ParseStatus(string(status)); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.OrderRepository()
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, &dto.OrderUpdate{Status: &status}); err != nil {
			return err
		}
		read, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		log.Error("Failed to update order status", "error", err)
		return nil, err
	}
	log.Info("Order status updated")
	return read, nil
}

// Get returns an order with its owner.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (read *dto.OrderRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.OrderRepository()
		if err != nil {
			return err
		}
		read, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if read == nil {
			return order.ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return read, nil
}

// ListByUser returns the orders of userID, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) (orders []*dto.OrderRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.OrderRepository()
		if err != nil {
			return err
		}
		orders, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to list orders", "userID", userID, "error", err)
		return nil, err
	}
	return orders, nil
}

// ListAll returns every order with its owner, newest first.
func (s *Service) ListAll(ctx context.Context) (orders []*dto.OrderRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.OrderRepository()
		if err != nil {
			return err
		}
		orders, err = repo.ListAll(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to list all orders", "error", err)
		return nil, err
	}
	return orders, nil
}

// Close issues the final invoice, marks the order SHIPPED and, when asked,
// debits the owner's metal account, all in one transaction. The owner is
// emailed once the transaction has committed.
func (s *Service) Close(
	ctx context.Context,
	id uuid.UUID,
	in dto.OrderClose,
) (*dto.OrderCloseResult, error) {
	log := s.logger.With("orderID", id, "invoiceNumber", in.InvoiceNumber)
	log.Debug("Close called")
	if in.WantsDebit() {
		if _, err := metal.ParseType(string(*in.MetalType)); err != nil {
			return nil, err
		}
		if err := metal.ValidateAmount(*in.FinalWeight); err != nil {
			return nil, err
		}
	}

	result := &dto.OrderCloseResult{}
	var debitedMetal metal.Type
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		orders, err := uow.OrderRepository()
		if err != nil {
			return err
		}
		invoices, err := uow.InvoiceRepository()
		if err != nil {
			return err
		}
		current, err := orders.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return order.ErrOrderNotFound
		}

		inv, err := invoice.New(
			in.InvoiceNumber,
			current.ID,
			current.UserID,
			in.InvoiceFileURL,
			in.FinalAmount,
			time.Time{},
			nil,
		)
		if err != nil {
			return err
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

		closed := order.StatusClosed
		if err := orders.Update(ctx, id, &dto.OrderUpdate{
			Status:         &closed,
			EstimatedPrice: in.FinalAmount,
		}); err != nil {
			return err
		}

		if in.WantsDebit() {
			tx, err := s.debit(ctx, uow, current, inv, in)
			if err != nil {
				return err
			}
			if tx != nil {
				result.Transaction = tx
				debitedMetal = *in.MetalType
			}
		}

		if result.Order, err = orders.Get(ctx, id); err != nil {
			return err
		}
		if result.Invoice, err = invoices.Get(ctx, inv.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to close order", "error", err)
		return nil, err
	}

	metrics.RecordOrderClosed(result.Transaction != nil)
	if result.Transaction != nil {
		metrics.RecordLedgerPosting(string(debitedMetal), string(metal.Debit))
	}
	log.Info("Order closed", "debited", result.Transaction != nil)

	s.notifyCompleted(ctx, result)
	return result, nil
}

// debit posts the final weight on the owner's account for the requested
// metal. A missing account skips the debit.
func (s *Service) debit(
	ctx context.Context,
	uow repository.UnitOfWork,
	o *dto.OrderRead,
	inv *invoice.Invoice,
	in dto.OrderClose,
) (*dto.MetalTransactionRead, error) {
	accounts, err := uow.MetalAccountRepository()
	if err != nil {
		return nil, err
	}
	account, err := accounts.GetByUserAndType(ctx, o.UserID, *in.MetalType)
	if err != nil {
		return nil, err
	}
	if account == nil {
		s.logger.Warn("No metal account for debit, skipping",
			"orderID", o.ID,
			"userID", o.UserID,
			"metalType", *in.MetalType,
		)
		return nil, nil
	}
	entry, err := metal.NewEntry(
		metal.Debit,
		*in.FinalWeight,
		metal.DebitLabel(o.ID, inv.InvoiceNumber),
		time.Time{},
	)
	if err != nil {
		return nil, err
	}
	_, tx, err := metalsvc.Post(ctx, uow, account.ID, entry)
	return tx, err
}

func (s *Service) notifyCompleted(ctx context.Context, result *dto.OrderCloseResult) {
	if s.notifier == nil || result.Order == nil || result.Order.User == nil || result.Order.User.Email == "" {
		return
	}
	ref := result.Order.ID.String()[:8]
	msg := notify.OrderCompletedMessage(
		result.Order.User.Email,
		ref,
		result.Invoice.InvoiceNumber,
		result.Invoice.Amount,
		s.mail.AppURL,
	)
	res := s.notifier.Send(ctx, msg)
	metrics.RecordNotification("order_completed", res.Success)
	if !res.Success {
		s.logger.Warn("Order completed email not delivered", "orderID", result.Order.ID)
	}
}
