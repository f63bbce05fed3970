package invoice

import (
	"context"
	"errors"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/dberr"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/invoice"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) invoice.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.InvoiceCreate) error {
	inv := &model.Invoice{
		ID:            create.ID,
		InvoiceNumber: create.InvoiceNumber,
		OrderID:       create.OrderID,
		UserID:        create.UserID,
		FileURL:       create.FileURL,
		IssueDate:     create.IssueDate,
		Notes:         create.Notes,
	}
	if create.Amount != nil {
		inv.Amount = decimal.NewNullDecimal(*create.Amount)
	}
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(inv).Error
	}, dberr.MissingReference)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceRead, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("User", model.OwnerColumns).
		First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&inv), nil
}

func (r *repository) ListAll(ctx context.Context) ([]*dto.InvoiceRead, error) {
	return r.list(ctx, r.db.WithContext(ctx).Preload("User", model.OwnerColumns))
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.InvoiceRead, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *repository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*dto.InvoiceRead, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("order_id = ?", orderID))
}

func (r *repository) list(ctx context.Context, q *gorm.DB) ([]*dto.InvoiceRead, error) {
	var invoices []model.Invoice
	if err := q.WithContext(ctx).Order("created_at desc").Find(&invoices).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.InvoiceRead, 0, len(invoices))
	for i := range invoices {
		result = append(result, mapModelToDTO(&invoices[i]))
	}
	return result, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", id).Error
	})
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Invoice{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func mapModelToDTO(inv *model.Invoice) *dto.InvoiceRead {
	out := &dto.InvoiceRead{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		OrderID:       inv.OrderID,
		UserID:        inv.UserID,
		FileURL:       inv.FileURL,
		IssueDate:     inv.IssueDate,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		User:          inv.User.Owner(),
	}
	if inv.Amount.Valid {
		amount := inv.Amount.Decimal
		out.Amount = &amount
	}
	return out
}

var _ invoice.Repository = (*repository)(nil)
