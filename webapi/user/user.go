package user

import (
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/middleware"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	usersvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/user"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	r fiber.Router,
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	member := func(h fiber.Handler) []fiber.Handler {
		return append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin, user.RoleClient), h)
	}
	admin := func(h fiber.Handler) []fiber.Handler {
		return append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin), h)
	}

	r.Post("/users/register", Register(userSvc))
	// Literal paths go first so they are not captured by /users/:id.
	r.Get("/users/me", member(Me(userSvc))...)
	r.Patch("/users/me", member(UpdateMe(userSvc))...)
	r.Patch("/users/me/password", member(ChangePassword(userSvc))...)
	r.Patch("/users/me/documents", member(UpdateDocuments(userSvc))...)
	r.Get("/users", admin(List(userSvc))...)
	r.Get("/users/pending", admin(ListPending(userSvc))...)
	r.Get("/users/:id", admin(Get(userSvc))...)
	r.Patch("/users/:id/status", admin(SetStatus(userSvc))...)
}

// Register creates a pending client from the admin-facing form.
// @Summary Register a client without password
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /users/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.Register(c.Context(), dto.UserRegister{
			Email:          input.Email,
			Name:           input.Name,
			CompanyName:    input.CompanyName,
			Phone:          input.Phone,
			Address:        input.Address,
			KbisFileURL:    input.KbisFileURL,
			CustomsFileURL: input.CustomsFileURL,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't register", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Registration pending validation",
			fiber.Map{"id": u.ID, "status": u.Status})
	}
}

// Me returns the profile of the caller.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /users/me [get]
// @Security Bearer
func Me(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := middleware.CurrentPrincipal(c)
		u, err := userSvc.Get(c.Context(), p.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// UpdateMe edits the profile of the caller.
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param request body ProfileInput true "Profile fields"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /users/me [patch]
// @Security Bearer
func UpdateMe(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ProfileInput](c)
		if input == nil {
			return err
		}
		p, _ := middleware.CurrentPrincipal(c)
		u, err := userSvc.UpdateProfile(c.Context(), p.UserID, dto.ProfileUpdate{
			Name:        input.Name,
			CompanyName: input.CompanyName,
			Phone:       input.Phone,
			Address:     input.Address,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", u)
	}
}

// ChangePassword replaces the password of the caller.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param request body PasswordInput true "Current and new password"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /users/me/password [patch]
// @Security Bearer
func ChangePassword(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PasswordInput](c)
		if input == nil {
			return err
		}
		p, _ := middleware.CurrentPrincipal(c)
		if err := userSvc.ChangePassword(c.Context(), p.UserID, input.CurrentPassword, input.NewPassword); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't change password", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Password changed", fiber.Map{"ok": true})
	}
}

// UpdateDocuments replaces the verification documents of the caller.
// @Summary Update documents
// @Tags users
// @Accept json
// @Produce json
// @Param request body DocumentsInput true "Document references"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /users/me/documents [patch]
// @Security Bearer
func UpdateDocuments(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DocumentsInput](c)
		if input == nil {
			return err
		}
		p, _ := middleware.CurrentPrincipal(c)
		u, err := userSvc.UpdateDocuments(c.Context(), p.UserID, dto.DocumentsUpdate{
			KbisFileURL:    input.KbisFileURL,
			CustomsFileURL: input.CustomsFileURL,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update documents", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Documents updated", u)
	}
}

// List returns every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /users [get]
// @Security Bearer
func List(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users", users)
	}
}

// ListPending returns the accounts awaiting review.
// @Summary List pending users
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /users/pending [get]
// @Security Bearer
func ListPending(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.ListPending(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pending users", users)
	}
}

// Get returns a user by ID.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /users/{id} [get]
// @Security Bearer
func Get(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "User")
		if id == nil {
			return err
		}
		u, err := userSvc.Get(c.Context(), *id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// SetStatus validates, resets or rejects an account. Rejection deletes it.
// @Summary Review a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body StatusInput true "New status"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /users/{id}/status [patch]
// @Security Bearer
func SetStatus(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id", "User")
		if id == nil {
			return err
		}
		input, err := common.BindAndValidate[StatusInput](c)
		if input == nil {
			return err
		}
		status := user.Status(input.Status)
		u, err := userSvc.SetStatus(c.Context(), *id, status)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update status", err)
		}
		if u == nil {
			return common.SuccessResponseJSON(c, fiber.StatusOK, "User rejected and deleted",
				fiber.Map{"id": *id, "status": status, "deleted": true})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User status updated",
			fiber.Map{"id": u.ID, "status": u.Status})
	}
}
