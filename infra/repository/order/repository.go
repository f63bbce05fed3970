package order

import (
	"context"
	"errors"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/dberr"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	domainorder "github.com/benaja-bendo/Le-creuset-backend/pkg/domain/order"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) order.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.OrderCreate) error {
	o := &model.Order{
		ID:             create.ID,
		UserID:         create.UserID,
		StlFileURL:     create.StlFileURL,
		EstimatedPrice: nullDecimal(create.EstimatedPrice),
		Status:         string(create.Status),
	}
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(o).Error
	}, dberr.MissingReference)
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, update *dto.OrderUpdate) error {
	updates := make(map[string]any)
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.EstimatedPrice != nil {
		updates["estimated_price"] = *update.EstimatedPrice
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return dberr.Map(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainorder.ErrOrderNotFound
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.OrderRead, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("User", model.OwnerColumns).
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&o), nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.OrderRead, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTO(orders), nil
}

func (r *repository) ListAll(ctx context.Context) ([]*dto.OrderRead, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Preload("User", model.OwnerColumns).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTO(orders), nil
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func mapModelsToDTO(orders []model.Order) []*dto.OrderRead {
	result := make([]*dto.OrderRead, 0, len(orders))
	for i := range orders {
		result = append(result, mapModelToDTO(&orders[i]))
	}
	return result
}

func mapModelToDTO(o *model.Order) *dto.OrderRead {
	return &dto.OrderRead{
		ID:             o.ID,
		UserID:         o.UserID,
		StlFileURL:     o.StlFileURL,
		EstimatedPrice: decimalPtr(o.EstimatedPrice),
		Status:         domainorder.Status(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		User:           o.User.Owner(),
	}
}

var _ order.Repository = (*repository)(nil)
