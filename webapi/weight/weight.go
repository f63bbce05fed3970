// Package weight exposes the metal weight accounts of clients.
package weight

import (
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/middleware"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	metalsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/metal"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	r fiber.Router,
	metalSvc *metalsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	r.Get("/weights/me",
		append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin, user.RoleClient), ListMine(metalSvc))...)
	admin := func(h fiber.Handler) []fiber.Handler {
		return append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin), h)
	}
	r.Get("/weights/all", admin(ListAll(metalSvc))...)
	r.Get("/weights/user/:userId", admin(ListByUser(metalSvc))...)
	r.Post("/weights/:id/transaction", admin(AddTransaction(metalSvc))...)
}

// ListMine returns the caller's accounts with their recent transactions.
// @Summary My metal accounts
// @Tags weights
// @Produce json
// @Success 200 {object} common.Response
// @Router /weights/me [get]
// @Security Bearer
func ListMine(metalSvc *metalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := middleware.CurrentPrincipal(c)
		accounts, err := metalSvc.ListForUser(c.Context(), p.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Metal accounts", accounts)
	}
}

// ListAll returns every account, lowest balance first.
// @Summary All metal accounts
// @Tags weights
// @Produce json
// @Success 200 {object} common.Response
// @Router /weights/all [get]
// @Security Bearer
func ListAll(metalSvc *metalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := metalSvc.ListAll(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Metal accounts", accounts)
	}
}

// ListByUser returns one client's accounts with their recent transactions.
// @Summary Metal accounts of a client
// @Tags weights
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /weights/user/{userId} [get]
// @Security Bearer
func ListByUser(metalSvc *metalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.ParseUUIDParam(c, "userId", "User")
		if userID == nil {
			return err
		}
		accounts, err := metalSvc.ListForUser(c.Context(), *userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Metal accounts", accounts)
	}
}

// AddTransaction credits or debits an account.
// @Summary Post a ledger entry
// @Tags weights
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body TransactionInput true "Ledger entry"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /weights/{id}/transaction [post]
// @Security Bearer
func AddTransaction(metalSvc *metalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := common.ParseUUIDParam(c, "id", "Account")
		if accountID == nil {
			return err
		}
		input, err := common.BindAndValidate[TransactionInput](c)
		if input == nil {
			return err
		}
		tx, err := metalSvc.AddTransaction(c.Context(), *accountID, dto.MetalTransactionInput{
			Type:   metal.TransactionType(input.Type),
			Amount: *input.Amount,
			Label:  input.Label,
			Date:   input.Date,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't post transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction recorded", tx)
	}
}
