package repository

import (
	"context"
	"reflect"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/invoice"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/mold"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/order"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Every repository obtained from the UnitOfWork passed to fn shares the same
// transaction, so writes across users, orders, invoices and ledgers commit
// or roll back together.
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*order.Repository)(nil)).Elem())
//	repo := repoAny.(order.Repository)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested type, bound to the current transaction/session.
	GetRepository(repoType reflect.Type) (any, error)

	UserRepository() (user.Repository, error)
	OrderRepository() (order.Repository, error)
	InvoiceRepository() (invoice.Repository, error)
	MoldRepository() (mold.Repository, error)
	MetalAccountRepository() (metal.AccountRepository, error)
	MetalTransactionRepository() (metal.TransactionRepository, error)
}
