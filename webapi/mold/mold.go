package mold

import (
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/middleware"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	moldsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/mold"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	r fiber.Router,
	moldSvc *moldsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	r.Get("/molds/me",
		append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin, user.RoleClient), ListMine(moldSvc))...)
	admin := func(h fiber.Handler) []fiber.Handler {
		return append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin), h)
	}
	r.Get("/molds/all", admin(ListAll(moldSvc))...)
	r.Post("/molds", admin(Create(moldSvc))...)
	r.Delete("/molds/:id", admin(Delete(moldSvc))...)
}

// ListMine returns the molds kept for the caller, by name.
// @Summary My molds
// @Tags molds
// @Produce json
// @Success 200 {object} common.Response
// @Router /molds/me [get]
// @Security Bearer
func ListMine(moldSvc *moldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := middleware.CurrentPrincipal(c)
		molds, err := moldSvc.ListByUser(c.Context(), p.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list molds", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Molds", molds)
	}
}

// ListAll returns every mold with its owner.
// @Summary All molds
// @Tags molds
// @Produce json
// @Success 200 {object} common.Response
// @Router /molds/all [get]
// @Security Bearer
func ListAll(moldSvc *moldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		molds, err := moldSvc.ListAll(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list molds", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Molds", molds)
	}
}

// Create registers a mold.
// @Summary Create mold
// @Tags molds
// @Accept json
// @Produce json
// @Param request body CreateInput true "Mold data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /molds [post]
// @Security Bearer
func Create(moldSvc *moldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		m, err := moldSvc.Create(c.Context(), input.UserID, input.Reference, input.Name, input.PhotoURL)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create mold", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Mold created", m)
	}
}

// Delete removes a mold.
// @Summary Delete mold
// @Tags molds
// @Produce json
// @Param id path string true "Mold ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /molds/{id} [delete]
// @Security Bearer
func Delete(moldSvc *moldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "Mold")
		if id == nil {
			return err
		}
		if err := moldSvc.Delete(c.Context(), *id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete mold", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Mold deleted", fiber.Map{"id": *id})
	}
}
