// Package user provides business logic for account onboarding, review and
// self-service profile management.
package user

import (
	"context"
	"log/slog"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/metrics"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/notify"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	metalsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/utils"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	uow      repository.UnitOfWork
	notifier notify.Notifier
	mail     *config.Mail
	logger   *slog.Logger
}

// New creates a new Service with a UnitOfWork, notifier and logger.
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

// Register creates a PENDING client and notifies the administrators and
// the registrant. An empty password stores a disabled credential.
func (s *Service) Register(
	ctx context.Context,
	in dto.UserRegister,
) (u *dto.UserRead, err error) {
	log := s.logger.With("email", in.Email)
	created, err := user.New(in.Email, in.Password, user.Profile{
		Name:        in.Name,
		CompanyName: in.CompanyName,
		Phone:       in.Phone,
		Address:     in.Address,
	}, user.Documents{
		KbisFileURL:    in.KbisFileURL,
		CustomsFileURL: in.CustomsFileURL,
	})
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		taken, err := repo.ExistsByEmail(ctx, created.Email)
		if err != nil {
			return err
		}
		if taken {
			return user.ErrEmailTaken
		}
		if err := repo.Create(ctx, &dto.UserCreate{
			ID:             created.ID,
			Email:          created.Email,
			PasswordHash:   created.PasswordHash,
			Name:           created.Name,
			CompanyName:    created.CompanyName,
			Phone:          created.Phone,
			Address:        created.Address,
			KbisFileURL:    created.KbisFileURL,
			CustomsFileURL: created.CustomsFileURL,
			Role:           created.Role,
			Status:         created.Status,
		}); err != nil {
			return err
		}
		u, err = repo.Get(ctx, created.ID)
		return err
	})
	if err != nil {
		log.Error("Registration failed", "error", err)
		return nil, err
	}
	log.Info("User registered", "userID", u.ID)

	if s.mail.AdminEmail != "" {
		s.send(ctx, "pending_account", notify.PendingAccountMessage(s.mail.AdminEmail, notify.PendingAccount{
			Email:          u.Email,
			CompanyName:    u.CompanyName,
			KbisFileURL:    u.KbisFileURL,
			CustomsFileURL: u.CustomsFileURL,
			AppURL:         s.mail.AppURL,
		}))
	}
	s.send(ctx, "registration_ack", notify.RegistrationAckMessage(u.Email, u.Name, u.CompanyName))
	return u, nil
}

// SetStatus applies an admin review decision. REJECTED deletes the account
// together with its molds and metal ledger, and returns a nil user. ACTIVE
// opens the missing metal accounts and welcomes the user on first
// activation.
func (s *Service) SetStatus(
	ctx context.Context,
	id uuid.UUID,
	status user.Status,
) (u *dto.UserRead, err error) {
	log := s.logger.With("userID", id, "status", status)
	if _, err := user.ParseStatus(string(status)); err != nil {
		return nil, err
	}
	var previous user.Status
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return user.ErrUserNotFound
		}
		previous = current.Status

		if status == user.StatusRejected {
			return deleteAccount(ctx, uow, id)
		}
		if err := repo.Update(ctx, id, &dto.UserUpdate{Status: &status}); err != nil {
			return err
		}
		if status == user.StatusActive {
			if _, err := metalsvc.OpenAccounts(ctx, uow, id); err != nil {
				return err
			}
		}
		u, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		log.Error("Failed to set user status", "error", err)
		return nil, err
	}
	log.Info("User status updated", "previous", previous)

	if status == user.StatusActive && previous != user.StatusActive {
		s.send(ctx, "welcome", notify.WelcomeMessage(u.Email, u.Name, s.mail.AppURL))
	}
	return u, nil
}

// deleteAccount removes a user that owns no orders or invoices.
func deleteAccount(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) error {
	orders, err := uow.OrderRepository()
	if err != nil {
		return err
	}
	invoices, err := uow.InvoiceRepository()
	if err != nil {
		return err
	}
	molds, err := uow.MoldRepository()
	if err != nil {
		return err
	}
	accounts, err := uow.MetalAccountRepository()
	if err != nil {
		return err
	}
	transactions, err := uow.MetalTransactionRepository()
	if err != nil {
		return err
	}
	users, err := uow.UserRepository()
	if err != nil {
		return err
	}

	nOrders, err := orders.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	nInvoices, err := invoices.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if nOrders > 0 || nInvoices > 0 {
		return user.ErrUserHasRecords
	}

	if err := molds.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := transactions.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := accounts.DeleteByUser(ctx, id); err != nil {
		return err
	}
	return users.Delete(ctx, id)
}

// UpdateProfile changes the editable profile fields of a user.
func (s *Service) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	in dto.ProfileUpdate,
) (*dto.UserRead, error) {
	return s.update(ctx, id, &dto.UserUpdate{
		Name:        in.Name,
		CompanyName: in.CompanyName,
		Phone:       in.Phone,
		Address:     in.Address,
	})
}

// UpdateDocuments replaces the verification documents of a user.
func (s *Service) UpdateDocuments(
	ctx context.Context,
	id uuid.UUID,
	in dto.DocumentsUpdate,
) (*dto.UserRead, error) {
	return s.update(ctx, id, &dto.UserUpdate{
		KbisFileURL:    in.KbisFileURL,
		CustomsFileURL: in.CustomsFileURL,
	})
}

// ChangePassword replaces the credential after verifying the current one.
func (s *Service) ChangePassword(
	ctx context.Context,
	id uuid.UUID,
	currentPassword, newPassword string,
) error {
	log := s.logger.With("userID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		if !user.VerifyPassword(currentPassword, u.PasswordHash) {
			return user.ErrUserUnauthorized
		}
		hash, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		return repo.Update(ctx, id, &dto.UserUpdate{PasswordHash: &hash})
	})
	if err != nil {
		log.Error("Failed to change password", "error", err)
		return err
	}
	log.Info("Password changed")
	return nil
}

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return nil
	})
	return u, err
}

// List returns every user, newest first.
func (s *Service) List(ctx context.Context) (users []*dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		users, err = repo.List(ctx)
		return err
	})
	return users, err
}

// ListPending returns the accounts awaiting review, newest first.
func (s *Service) ListPending(ctx context.Context) (users []*dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		users, err = repo.ListByStatus(ctx, user.StatusPending)
		return err
	})
	return users, err
}

// EnsureAdmin creates an active administrator unless the email is already
// registered. It reports whether a user was created.
func (s *Service) EnsureAdmin(
	ctx context.Context,
	email, password, name string,
) (created bool, err error) {
	admin, err := user.NewAdmin(email, password, name)
	if err != nil {
		return false, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		exists, err := repo.ExistsByEmail(ctx, admin.Email)
		if err != nil || exists {
			return err
		}
		created = true
		return repo.Create(ctx, &dto.UserCreate{
			ID:           admin.ID,
			Email:        admin.Email,
			PasswordHash: admin.PasswordHash,
			Name:         admin.Name,
			Role:         admin.Role,
			Status:       admin.Status,
		})
	})
	if err != nil {
		return false, err
	}
	if created {
		s.logger.Info("Admin user seeded", "email", admin.Email)
	}
	return created, nil
}

// SendTestMail sends a connectivity check to the administrator address.
func (s *Service) SendTestMail(ctx context.Context) notify.Result {
	if s.notifier == nil || s.mail.AdminEmail == "" {
		return notify.Result{}
	}
	res := s.notifier.Send(ctx, notify.TestMessage(s.mail.AdminEmail))
	metrics.RecordNotification("test", res.Success)
	return res
}

func (s *Service) update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, id, update); err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to update user", "userID", id, "error", err)
		return nil, err
	}
	return u, nil
}

func (s *Service) send(ctx context.Context, kind string, msg notify.Message) {
	if s.notifier == nil {
		return
	}
	res := s.notifier.Send(ctx, msg)
	metrics.RecordNotification(kind, res.Success)
	if !res.Success {
		s.logger.Warn("Notification not delivered", "kind", kind, "to", msg.To)
	}
}
