package dto

import (
	"time"

	"github.com/google/uuid"
)

// MoldCreate represents the data needed to register a mold.
type MoldCreate struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Reference string
	Name      string
	PhotoURL  *string
}

// MoldRead represents a read-optimized view of a mold.
type MoldRead struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	User      *Owner    `json:"user,omitempty"`
}
