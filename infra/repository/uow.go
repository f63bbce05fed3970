package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/invoice"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/metal"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/mold"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/order"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	invoicerepo "github.com/benaja-bendo/Le-creuset-backend/pkg/repository/invoice"
	metalrepo "github.com/benaja-bendo/Le-creuset-backend/pkg/repository/metal"
	moldrepo "github.com/benaja-bendo/Le-creuset-backend/pkg/repository/mold"
	orderrepo "github.com/benaja-bendo/Le-creuset-backend/pkg/repository/order"
	userrepo "github.com/benaja-bendo/Le-creuset-backend/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do share the transaction session.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*userrepo.Repository)(nil)).Elem():             func(db *gorm.DB) any { return user.New(db) },
			reflect.TypeOf((*orderrepo.Repository)(nil)).Elem():            func(db *gorm.DB) any { return order.New(db) },
			reflect.TypeOf((*invoicerepo.Repository)(nil)).Elem():          func(db *gorm.DB) any { return invoice.New(db) },
			reflect.TypeOf((*moldrepo.Repository)(nil)).Elem():             func(db *gorm.DB) any { return mold.New(db) },
			reflect.TypeOf((*metalrepo.AccountRepository)(nil)).Elem():     func(db *gorm.DB) any { return metal.NewAccountRepository(db) },
			reflect.TypeOf((*metalrepo.TransactionRepository)(nil)).Elem(): func(db *gorm.DB) any { return metal.NewTransactionRepository(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository returns the repository registered for repoType, bound to
// the transaction when called inside Do and to the pool otherwise.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) UserRepository() (userrepo.Repository, error) {
	return getRepository[userrepo.Repository](u)
}

func (u *UoW) OrderRepository() (orderrepo.Repository, error) {
	return getRepository[orderrepo.Repository](u)
}

func (u *UoW) InvoiceRepository() (invoicerepo.Repository, error) {
	return getRepository[invoicerepo.Repository](u)
}

func (u *UoW) MoldRepository() (moldrepo.Repository, error) {
	return getRepository[moldrepo.Repository](u)
}

func (u *UoW) MetalAccountRepository() (metalrepo.AccountRepository, error) {
	return getRepository[metalrepo.AccountRepository](u)
}

func (u *UoW) MetalTransactionRepository() (metalrepo.TransactionRepository, error) {
	return getRepository[metalrepo.TransactionRepository](u)
}

func getRepository[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository %T does not implement %v", repoAny, reflect.TypeOf((*T)(nil)).Elem())
	}
	return repo, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
