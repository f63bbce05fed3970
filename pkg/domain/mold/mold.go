package mold

import (
	"fmt"
	"strings"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/google/uuid"
)

// ErrMoldNotFound is returned when a mold cannot be found.
var ErrMoldNotFound = fmt.Errorf("mold %w", domain.ErrNotFound)

// Mold is a reusable mold kept for a client.
type Mold struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Reference string
	Name      string
	PhotoURL  *string
	CreatedAt time.Time
}

func New(userID uuid.UUID, reference, name string, photoURL *string) (*Mold, error) {
	reference = strings.TrimSpace(reference)
	name = strings.TrimSpace(name)
	if userID == uuid.Nil || reference == "" || name == "" {
		return nil, fmt.Errorf("mold needs an owner, a reference and a name: %w", domain.ErrValidation)
	}
	return &Mold{
		ID:        uuid.New(),
		UserID:    userID,
		Reference: reference,
		Name:      name,
		PhotoURL:  photoURL,
		CreatedAt: time.Now().UTC(),
	}, nil
}
