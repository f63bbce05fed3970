package user

import (
	"context"
	"errors"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/dberr"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	domainuser "github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &model.User{
		ID:             create.ID,
		Email:          create.Email,
		Password:       create.PasswordHash,
		Name:           create.Name,
		CompanyName:    create.CompanyName,
		Phone:          create.Phone,
		Address:        create.Address,
		KbisFileURL:    create.KbisFileURL,
		CustomsFileURL: create.CustomsFileURL,
		Role:           string(create.Role),
		Status:         string(create.Status),
	}
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(u).Error
	}, userRules...)
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	uu *dto.UserUpdate,
) error {
	updates := make(map[string]any)

	// Only include non-nil fields in the update
	if uu.Name != nil {
		updates["name"] = *uu.Name
	}
	if uu.CompanyName != nil {
		updates["company_name"] = *uu.CompanyName
	}
	if uu.Phone != nil {
		updates["phone"] = *uu.Phone
	}
	if uu.Address != nil {
		updates["address"] = *uu.Address
	}
	if uu.KbisFileURL != nil {
		updates["kbis_file_url"] = *uu.KbisFileURL
	}
	if uu.CustomsFileURL != nil {
		updates["customs_file_url"] = *uu.CustomsFileURL
	}
	if uu.PasswordHash != nil {
		updates["password"] = *uu.PasswordHash
	}
	if uu.Status != nil {
		updates["status"] = string(*uu.Status)
	}

	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return dberr.Map(res.Error, userRules...)
	}
	if res.RowsAffected == 0 {
		return domainuser.ErrUserNotFound
	}
	return nil
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return dberr.Wrap(func() error {
		return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
	}, userRules...)
}

func (r *repository) List(ctx context.Context) ([]*dto.UserRead, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTO(users), nil
}

func (r *repository) ListByStatus(
	ctx context.Context,
	status domainuser.Status,
) ([]*dto.UserRead, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTO(users), nil
}

func (r *repository) Exists(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Email is the only unique column besides the primary key, and users are
// only referenced by their own records.
var userRules = []dberr.Rule{
	{Cause: gorm.ErrDuplicatedKey, As: domainuser.ErrEmailTaken},
	{Cause: gorm.ErrForeignKeyViolated, As: domainuser.ErrUserHasRecords},
}

func mapModelsToDTO(users []model.User) []*dto.UserRead {
	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result
}

func mapModelToDTO(u *model.User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHash:   u.Password,
		Name:           u.Name,
		CompanyName:    u.CompanyName,
		Phone:          u.Phone,
		Address:        u.Address,
		KbisFileURL:    u.KbisFileURL,
		CustomsFileURL: u.CustomsFileURL,
		Role:           domainuser.Role(u.Role),
		Status:         domainuser.Status(u.Status),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ user.Repository = (*repository)(nil)
