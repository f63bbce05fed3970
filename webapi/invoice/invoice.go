package invoice

import (
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/middleware"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	invoicesvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/invoice"
	ordersvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/order"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	r fiber.Router,
	invoiceSvc *invoicesvc.Service,
	orderSvc *ordersvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	member := func(h fiber.Handler) []fiber.Handler {
		return append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin, user.RoleClient), h)
	}
	admin := func(h fiber.Handler) []fiber.Handler {
		return append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin), h)
	}

	r.Get("/invoices/me", member(ListMine(invoiceSvc))...)
	r.Get("/invoices/order/:orderId", member(ListByOrder(invoiceSvc, orderSvc))...)
	r.Get("/invoices", admin(ListAll(invoiceSvc))...)
	r.Get("/invoices/user/:userId", admin(ListByUser(invoiceSvc))...)
	r.Get("/invoices/:id", admin(Get(invoiceSvc))...)
	r.Post("/invoices", admin(Create(invoiceSvc))...)
	r.Delete("/invoices/:id", admin(Delete(invoiceSvc))...)
}

// ListMine returns the invoices of the caller.
// @Summary My invoices
// @Tags invoices
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /invoices/me [get]
// @Security Bearer
func ListMine(invoiceSvc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := middleware.CurrentPrincipal(c)
		invoices, err := invoiceSvc.ListByUser(c.Context(), p.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list invoices", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoices", invoices)
	}
}

// ListByOrder returns the invoices of one order to its owner or to an
// administrator.
// @Summary Invoices of an order
// @Tags invoices
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /invoices/order/{orderId} [get]
// @Security Bearer
func ListByOrder(invoiceSvc *invoicesvc.Service, orderSvc *ordersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := common.ParseUUIDParam(c, "orderId", "Order")
		if orderID == nil {
			return err
		}
		o, err := orderSvc.Get(c.Context(), *orderID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load order", err)
		}
		if p, _ := middleware.CurrentPrincipal(c); !p.CanAccess(o.UserID) {
			return common.ProblemDetailsJSON(c, "Forbidden", nil, "Order belongs to another client", fiber.StatusForbidden)
		}
		invoices, err := invoiceSvc.ListByOrder(c.Context(), *orderID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list invoices", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoices", invoices)
	}
}

// ListAll returns every invoice with its owner.
// @Summary All invoices
// @Tags invoices
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /invoices [get]
// @Security Bearer
func ListAll(invoiceSvc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invoices, err := invoiceSvc.ListAll(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list invoices", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoices", invoices)
	}
}

// ListByUser returns the invoices of one client.
// @Summary Invoices of a client
// @Tags invoices
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /invoices/user/{userId} [get]
// @Security Bearer
func ListByUser(invoiceSvc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.ParseUUIDParam(c, "userId", "User")
		if userID == nil {
			return err
		}
		invoices, err := invoiceSvc.ListByUser(c.Context(), *userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list invoices", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoices", invoices)
	}
}

// Get returns one invoice.
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /invoices/{id} [get]
// @Security Bearer
func Get(invoiceSvc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "Invoice")
		if id == nil {
			return err
		}
		inv, err := invoiceSvc.Get(c.Context(), *id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load invoice", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoice found", inv)
	}
}

// Create issues an invoice outside the closing workflow.
// @Summary Create invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body CreateInput true "Invoice data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /invoices [post]
// @Security Bearer
func Create(invoiceSvc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		inv, err := invoiceSvc.Create(c.Context(), dto.InvoiceIssue{
			InvoiceNumber: input.InvoiceNumber,
			OrderID:       input.OrderID,
			UserID:        input.UserID,
			FileURL:       input.FileURL,
			Amount:        input.Amount,
			IssueDate:     input.IssueDate,
			Notes:         input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create invoice", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Invoice created", inv)
	}
}

// Delete removes an invoice.
// @Summary Delete invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /invoices/{id} [delete]
// @Security Bearer
func Delete(invoiceSvc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "Invoice")
		if id == nil {
			return err
		}
		if err := invoiceSvc.Delete(c.Context(), *id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete invoice", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoice deleted", fiber.Map{"id": *id})
	}
}
