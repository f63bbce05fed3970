package mold

import (
	"context"
	"errors"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/dberr"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/mold"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) mold.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.MoldCreate) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&model.Mold{
			ID:        create.ID,
			UserID:    create.UserID,
			Reference: create.Reference,
			Name:      create.Name,
			PhotoURL:  create.PhotoURL,
		}).Error
	}, dberr.MissingReference)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.MoldRead, error) {
	var m model.Mold
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&m), nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.MoldRead, error) {
	var molds []model.Mold
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&molds).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTO(molds), nil
}

func (r *repository) ListAll(ctx context.Context) ([]*dto.MoldRead, error) {
	var molds []model.Mold
	if err := r.db.WithContext(ctx).
		Joins("User").
		Order("\"User\".\"company_name\" asc").
		Order("molds.name asc").
		Find(&molds).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTO(molds), nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Delete(&model.Mold{}, "id = ?", id).Error
	})
}

func (r *repository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Mold{}).Error
	})
}

func mapModelsToDTO(molds []model.Mold) []*dto.MoldRead {
	result := make([]*dto.MoldRead, 0, len(molds))
	for i := range molds {
		result = append(result, mapModelToDTO(&molds[i]))
	}
	return result
}

func mapModelToDTO(m *model.Mold) *dto.MoldRead {
	return &dto.MoldRead{
		ID:        m.ID,
		UserID:    m.UserID,
		Reference: m.Reference,
		Name:      m.Name,
		PhotoURL:  m.PhotoURL,
		CreatedAt: m.CreatedAt,
		User:      m.User.Owner(),
	}
}

var _ mold.Repository = (*repository)(nil)
