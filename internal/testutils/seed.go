package testutils

import (
	"testing"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the password of every user created by CreateUser.
const TestPassword = "Password123"

func init() {
	utils.SetHashCost(bcrypt.MinCost)
}

// UserOption customizes a seeded user.
type UserOption func(*model.User)

// WithStatus sets the account status.
func WithStatus(s user.Status) UserOption {
	return func(u *model.User) { u.Status = string(s) }
}

// WithRole sets the account role.
func WithRole(r user.Role) UserOption {
	return func(u *model.User) { u.Role = string(r) }
}

// WithCompany sets the company name.
func WithCompany(name string) UserOption {
	return func(u *model.User) { u.CompanyName = name }
}

// CreateUser inserts an ACTIVE client whose password is TestPassword.
func CreateUser(t testing.TB, db *gorm.DB, email string, opts ...UserOption) *model.User {
	t.Helper()
	hash, err := utils.HashPassword(TestPassword)
	require.NoError(t, err)
	u := &model.User{
		ID:          uuid.New(),
		Email:       email,
		Password:    hash,
		Name:        "Test User",
		CompanyName: "Fonderie Test",
		Phone:       "0102030405",
		Address:     "1 rue du Test, Paris",
		Role:        string(user.RoleClient),
		Status:      string(user.StatusActive),
	}
	for _, opt := range opts {
		opt(u)
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateOrder inserts an order for userID in the given status.
func CreateOrder(t testing.TB, db *gorm.DB, userID uuid.UUID, status string) *model.Order {
	t.Helper()
	o := &model.Order{ID: uuid.New(), UserID: userID, Status: status}
	require.NoError(t, db.Create(o).Error)
	return o
}

// CreateAccount inserts a metal account with an opening balance.
func CreateAccount(t testing.TB, db *gorm.DB, userID uuid.UUID, mt metal.Type, balance decimal.Decimal) *model.MetalAccount {
	t.Helper()
	a := &model.MetalAccount{ID: uuid.New(), UserID: userID, MetalType: string(mt), Balance: balance}
	require.NoError(t, db.Create(a).Error)
	return a
}
