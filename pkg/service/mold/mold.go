// Package mold provides the client mold registry.
package mold

import (
	"context"
	"log/slog"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/mold"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for molds.
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

// Create registers a mold for an existing user.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	reference, name string,
	photoURL *string,
) (read *dto.MoldRead, err error) {
	log := s.logger.With("userID", userID, "reference", reference)
	m, err := mold.New(userID, reference, name, photoURL)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		molds, err := uow.MoldRepository()
		if err != nil {
			return err
		}
		exists, err := users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrUserNotFound
		}
		if err := molds.Create(ctx, &dto.MoldCreate{
			ID:        m.ID,
			UserID:    m.UserID,
			Reference: m.Reference,
			Name:      m.Name,
			PhotoURL:  m.PhotoURL,
		}); err != nil {
			return err
		}
		read, err = molds.Get(ctx, m.ID)
		return err
	})
	if err != nil {
		log.Error("Failed to create mold", "error", err)
		return nil, err
	}
	log.Info("Mold created", "moldID", m.ID)
	return read, nil
}

// ListByUser returns the molds of userID ordered by name.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) (molds []*dto.MoldRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MoldRepository()
		if err != nil {
			return err
		}
		molds, err = repo.ListByUser(ctx, userID)
		return err
	})
	return molds, err
}

// ListAll returns every mold with its owner ordered by company name.
func (s *Service) ListAll(ctx context.Context) (molds []*dto.MoldRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MoldRepository()
		if err != nil {
			return err
		}
		molds, err = repo.ListAll(ctx)
		return err
	})
	return molds, err
}

// Delete removes a mold.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MoldRepository()
		if err != nil {
			return err
		}
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return mold.ErrMoldNotFound
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("Failed to delete mold", "moldID", id, "error", err)
		return err
	}
	s.logger.Info("Mold deleted", "moldID", id)
	return nil
}
