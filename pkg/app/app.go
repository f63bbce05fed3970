package app

import (
	"log/slog"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/notify"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/service/invoice"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/service/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/service/mold"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/service/order"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/service/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/storage"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow      repository.UnitOfWork
	Store    storage.FileStore
	Notifier notify.Notifier
	Logger   *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	UserService    *user.Service
	OrderService   *order.Service
	InvoiceService *invoice.Service
	MoldService    *mold.Service
	MetalService   *metal.Service
}

func New(deps *Deps, cfg *config.App) *App {
	mail := cfg.Mail
	if mail == nil {
		mail = &config.Mail{}
	}
	return &App{
		Deps:           deps,
		Config:         cfg,
		AuthService:    auth.New(deps.Uow, cfg.Auth.Jwt, deps.Logger),
		UserService:    user.New(deps.Uow, deps.Notifier, mail, deps.Logger),
		OrderService:   order.New(deps.Uow, deps.Notifier, mail, deps.Logger),
		InvoiceService: invoice.New(deps.Uow, deps.Logger),
		MoldService:    mold.New(deps.Uow, deps.Logger),
		MetalService:   metal.New(deps.Uow, deps.Logger),
	}
}
