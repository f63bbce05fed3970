package metal

import (
	"context"
	"errors"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/dberr"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	domainmetal "github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/metal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) metal.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, create *dto.MetalAccountCreate) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&model.MetalAccount{
			ID:         create.ID,
			UserID:     create.UserID,
			MetalType:  string(create.MetalType),
			Balance:    create.Balance,
			LastUpdate: time.Now().UTC(),
		}).Error
	}, dberr.MissingReference)
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.MetalAccountRead, error) {
	var a model.MetalAccount
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapAccountToDTO(&a), nil
}

func (r *accountRepository) GetByUserAndType(
	ctx context.Context,
	userID uuid.UUID,
	t domainmetal.Type,
) (*dto.MetalAccountRead, error) {
	var a model.MetalAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND metal_type = ?", userID, string(t)).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapAccountToDTO(&a), nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.MetalAccountRead, error) {
	var accounts []model.MetalAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("metal_type asc").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return mapAccountsToDTO(accounts), nil
}

func (r *accountRepository) ListAll(ctx context.Context) ([]*dto.MetalAccountRead, error) {
	var accounts []model.MetalAccount
	if err := r.db.WithContext(ctx).
		Preload("User", model.OwnerColumns).
		Order("balance asc").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return mapAccountsToDTO(accounts), nil
}

func (r *accountRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.MetalAccountRead, error) {
	var a model.MetalAccount
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapAccountToDTO(&a), nil
}

// SetBalance writes the exact decimal; arithmetic never runs in SQL, where
// SQLite would fold NUMERIC columns through float64.
func (r *accountRepository) SetBalance(
	ctx context.Context,
	id uuid.UUID,
	balance decimal.Decimal,
	at time.Time,
) error {
	res := r.db.WithContext(ctx).Model(&model.MetalAccount{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":     balance,
			"last_update": at,
		})
	if res.Error != nil {
		return dberr.Map(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainmetal.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.MetalAccount{}).Error
	})
}

func mapAccountsToDTO(accounts []model.MetalAccount) []*dto.MetalAccountRead {
	result := make([]*dto.MetalAccountRead, 0, len(accounts))
	for i := range accounts {
		result = append(result, mapAccountToDTO(&accounts[i]))
	}
	return result
}

func mapAccountToDTO(a *model.MetalAccount) *dto.MetalAccountRead {
	return &dto.MetalAccountRead{
		ID:         a.ID,
		UserID:     a.UserID,
		MetalType:  domainmetal.Type(a.MetalType),
		Balance:    a.Balance,
		LastUpdate: a.LastUpdate,
		User:       a.User.Owner(),
	}
}

var _ metal.AccountRepository = (*accountRepository)(nil)
