package auth

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
	authSvc *authsvc.Service,
	userSvc *usersvc.Service,
	cfg *config.App,
) {
	r.Post("/auth/register", Register(userSvc))
	r.Post("/auth/login", Login(authSvc))
	r.Post("/auth/logout", Logout())
	r.Post("/auth/mail-test",
		append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin), MailTest(userSvc))...)
}

// Register creates a pending client account.
// @Summary Register
// @Description Create a client account awaiting administrator validation
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /auth/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.Register(c.Context(), dto.UserRegister{
			Email:          input.Email,
			Password:       input.Password,
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

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		token, err := authSvc.GenerateToken(c.Context(), u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", LoginResponse{
			Token: token,
			User: LoginUser{
				ID:          u.ID.String(),
				Email:       u.Email,
				Role:        string(u.Role),
				Status:      string(u.Status),
				CompanyName: u.CompanyName,
			},
		})
	}
}

// Logout acknowledges a logout. Tokens are stateless and expire on their own.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Router /auth/logout [post]
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", fiber.Map{"ok": true})
	}
}

// MailTest sends a test email to the administrator address.
// @Summary Send a test email
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /auth/mail-test [post]
// @Security Bearer
func MailTest(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := userSvc.SendTestMail(c.Context())
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Test mail dispatched",
			fiber.Map{"ok": res.Success, "id": res.ID})
	}
}
