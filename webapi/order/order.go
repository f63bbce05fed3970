package order

import (
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/metal"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/order"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/middleware"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	ordersvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/order"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	r fiber.Router,
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

	r.Post("/orders", member(Create(orderSvc))...)
	r.Get("/orders/me", member(ListMine(orderSvc))...)
	r.Get("/orders/all", admin(ListAll(orderSvc))...)
	r.Get("/orders/:id", member(Get(orderSvc))...)
	r.Patch("/orders/:id/status", admin(SetStatus(orderSvc))...)
	r.Post("/orders/:id/close", admin(Close(orderSvc))...)
}

// Create places an order for the caller.
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateInput true "Order data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /orders [post]
// @Security Bearer
func Create(orderSvc *ordersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		p, _ := middleware.CurrentPrincipal(c)
		o, err := orderSvc.Create(c.Context(), p.UserID, input.StlFileURL, input.EstimatedPrice)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create order", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Order created", o)
	}
}

// ListMine returns the orders of the caller, newest first.
// @Summary My orders
// @Tags orders
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /orders/me [get]
// @Security Bearer
func ListMine(orderSvc *ordersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := middleware.CurrentPrincipal(c)
		orders, err := orderSvc.ListByUser(c.Context(), p.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list orders", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Orders", orders)
	}
}

// ListAll returns every order with its owner.
// @Summary All orders
// @Tags orders
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /orders/all [get]
// @Security Bearer
func ListAll(orderSvc *ordersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := orderSvc.ListAll(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list orders", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Orders", orders)
	}
}

// Get returns one order to its owner or to an administrator.
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /orders/{id} [get]
// @Security Bearer
func Get(orderSvc *ordersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "Order")
		if id == nil {
			return err
		}
		o, err := orderSvc.Get(c.Context(), *id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load order", err)
		}
		if p, _ := middleware.CurrentPrincipal(c); !p.CanAccess(o.UserID) {
			return common.ProblemDetailsJSON(c, "Forbidden", nil, "Order belongs to another client", fiber.StatusForbidden)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Order found", o)
	}
}

// SetStatus moves an order to another lifecycle stage.
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body StatusInput true "New status"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /orders/{id}/status [patch]
// @Security Bearer
func SetStatus(orderSvc *ordersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "Order")
		if id == nil {
			return err
		}
		input, err := common.BindAndValidate[StatusInput](c)
		if input == nil {
			return err
		}
		o, err := orderSvc.SetStatus(c.Context(), *id, order.Status(input.Status))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update order", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Order status updated", o)
	}
}

// Close issues the final invoice, ships the order and optionally debits the
// client's metal account.
// @Summary Close order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body CloseInput true "Closing data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /orders/{id}/close [post]
// @Security Bearer
func Close(orderSvc *ordersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "Order")
		if id == nil {
			return err
		}
		input, err := common.BindAndValidate[CloseInput](c)
		if input == nil {
			return err
		}
		in := dto.OrderClose{
			InvoiceNumber:      input.InvoiceNumber,
			InvoiceFileURL:     input.InvoiceFileURL,
			FinalAmount:        input.FinalAmount,
			FinalWeight:        input.FinalWeight,
			DebitWeightAccount: input.DebitWeightAccount,
		}
		if input.MetalType != nil {
			mt := metal.Type(*input.MetalType)
			in.MetalType = &mt
		}
		result, err := orderSvc.Close(c.Context(), *id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't close order", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Order closed", result)
	}
}
