package metal

import (
	"context"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/dberr"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	domainmetal "github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/metal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) metal.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, create *dto.MetalTransactionCreate) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&model.MetalTransaction{
			ID:        create.ID,
			AccountID: create.AccountID,
			Type:      string(create.Type),
			Amount:    create.Amount,
			Label:     create.Label,
			Date:      create.Date,
		}).Error
	}, dberr.MissingReference)
}

func (r *transactionRepository) ListRecent(
	ctx context.Context,
	accountID uuid.UUID,
	limit int,
) ([]*dto.MetalTransactionRead, error) {
	return r.list(r.db.WithContext(ctx).Where("account_id = ?", accountID).Limit(limit))
}

func (r *transactionRepository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
) ([]*dto.MetalTransactionRead, error) {
	return r.list(r.db.WithContext(ctx).Where("account_id = ?", accountID))
}

func (r *transactionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	accounts := r.db.Model(&model.MetalAccount{}).Select("id").Where("user_id = ?", userID)
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).
			Where("account_id IN (?)", accounts).
			Delete(&model.MetalTransaction{}).Error
	})
}

func (r *transactionRepository) list(q *gorm.DB) ([]*dto.MetalTransactionRead, error) {
	var txs []model.MetalTransaction
	if err := q.Order("date desc").Order("id desc").Find(&txs).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.MetalTransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, &dto.MetalTransactionRead{
			ID:        txs[i].ID,
			AccountID: txs[i].AccountID,
			Type:      domainmetal.TransactionType(txs[i].Type),
			Amount:    txs[i].Amount,
			Label:     txs[i].Label,
			Date:      txs[i].Date,
		})
	}
	return result, nil
}

var _ metal.TransactionRepository = (*transactionRepository)(nil)
