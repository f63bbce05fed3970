package dto

import (
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	Name           string
	CompanyName    string
	Phone          string
	Address        string
	KbisFileURL    string
	CustomsFileURL string
	Role           user.Role
	Status         user.Status
}

// UserUpdate represents the data that can be updated for a user.
// Nil fields are left untouched.
type UserUpdate struct {
	Name           *string
	CompanyName    *string
	Phone          *string
	Address        *string
	KbisFileURL    *string
	CustomsFileURL *string
	PasswordHash   *string
	Status         *user.Status
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	PasswordHash   string      `json:"-"`
	Name           string      `json:"name"`
	CompanyName    string      `json:"companyName"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	KbisFileURL    string      `json:"kbisFileUrl"`
	CustomsFileURL string      `json:"customsFileUrl"`
	Role           user.Role   `json:"role"`
	Status         user.Status `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Owner is the slim identity embedded in listings of orders, invoices,
// molds and metal accounts.
type Owner struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName"`
}

// UserRegister is the input of a registration.
type UserRegister struct {
	Email          string
	Password       string
	Name           string
	CompanyName    string
	Phone          string
	Address        string
	KbisFileURL    string
	CustomsFileURL string
}

// ProfileUpdate carries the editable profile fields of the current user.
type ProfileUpdate struct {
	Name        *string
	CompanyName *string
	Phone       *string
	Address     *string
}

// DocumentsUpdate carries replacement verification documents.
type DocumentsUpdate struct {
	KbisFileURL    *string
	CustomsFileURL *string
}
