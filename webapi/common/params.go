package common

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam reads the route parameter name as a UUID. On failure it
// writes a 400 problem and returns nil, like BindAndValidate.
func ParseUUIDParam(c *fiber.Ctx, name, label string) (*uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid "+label+" ID", err,
			fmt.Sprintf("%s ID must be a valid UUID", label), fiber.StatusBadRequest)
	}
	return &id, nil
}
