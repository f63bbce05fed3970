package mold

import "github.com/google/uuid"

// CreateInput registers a mold for a client.
type CreateInput struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	Reference string    `json:"reference" validate:"required,max=64"`
	Name      string    `json:"name" validate:"required,max=150"`
	PhotoURL  *string   `json:"photoUrl" validate:"omitempty,fileref"`
}
