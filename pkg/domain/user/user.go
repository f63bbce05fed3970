package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user %w", domain.ErrNotFound)
	// ErrUserUnauthorized is returned when credentials do not match.
	ErrUserUnauthorized = fmt.Errorf("user %w", domain.ErrUnauthorized)
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = fmt.Errorf("email %w", domain.ErrAlreadyExists)
	// ErrUserRejected is returned when a rejected account tries to log in.
	ErrUserRejected = fmt.Errorf("account rejected: %w", domain.ErrForbidden)
	// ErrUserHasRecords is returned when rejecting a user that still owns
	// orders or invoices.
	ErrUserHasRecords = fmt.Errorf("user owns orders or invoices: %w", domain.ErrAlreadyExists)
	// ErrInvalidStatus is returned for an unknown account status.
	ErrInvalidStatus = fmt.Errorf("invalid user status: %w", domain.ErrValidation)
)

// Role is the authorization role carried in tokens.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// Status is the account lifecycle state.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusRejected Status = "REJECTED"
)

// ParseStatus converts raw input into a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusActive, StatusRejected:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// disabledPrefix marks credentials that can never be verified. Accounts
// registered without a password carry one until an admin sets a password.
const disabledPrefix = "disabled:"

// Profile holds the business identity supplied at registration.
type Profile struct {
	Name        string
	CompanyName string
	Phone       string
	Address     string
}

// Documents are the verification file references (KBIS and customs).
type Documents struct {
	KbisFileURL    string
	CustomsFileURL string
}

// User represents an account in the system.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Profile
	Documents
	Role      Role
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a PENDING client. An empty password stores a disabled
// credential instead of a hash.
func New(email, password string, profile Profile, docs Documents) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty: %w", domain.ErrValidation)
	}
	hash, err := credential(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Profile:      profile,
		Documents:    docs,
		Role:         RoleClient,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewAdmin creates an active administrator.
func NewAdmin(email, password, name string) (*User, error) {
	u, err := New(email, password, Profile{Name: name}, Documents{})
	if err != nil {
		return nil, err
	}
	u.Role = RoleAdmin
	u.Status = StatusActive
	return u, nil
}

// IsDisabledCredential reports whether hash can never match a password.
func IsDisabledCredential(hash string) bool {
	return hash == "" || strings.HasPrefix(hash, disabledPrefix)
}

// VerifyPassword checks password against a stored credential.
func VerifyPassword(password, hash string) bool {
	if IsDisabledCredential(hash) {
		return false
	}
	return utils.CheckPasswordHash(password, hash)
}

func credential(password string) (string, error) {
	if password == "" {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		return disabledPrefix + hex.EncodeToString(buf), nil
	}
	return utils.HashPassword(password)
}
