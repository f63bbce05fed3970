// Package model holds the GORM records shared by the repositories.
package model

import (
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents a user record in the database.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null;size:255"`
	Password       string    `gorm:"not null"`
	Name           string    `gorm:"size:255"`
	CompanyName    string    `gorm:"size:255;index"`
	Phone          string    `gorm:"size:64"`
	Address        string    `gorm:"size:512"`
	KbisFileURL    string    `gorm:"column:kbis_file_url;size:1024"`
	CustomsFileURL string    `gorm:"column:customs_file_url;size:1024"`
	Role           string    `gorm:"size:16;not null;default:CLIENT"`
	Status         string    `gorm:"size:16;not null;default:PENDING;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Order represents an order record in the database.
type Order struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	User           *User               `gorm:"constraint:OnDelete:RESTRICT"`
	StlFileURL     *string             `gorm:"column:stl_file_url;size:1024"`
	EstimatedPrice decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Status         string              `gorm:"size:16;not null;default:PENDING;index"`
	CreatedAt      time.Time           `gorm:"index"`
	UpdatedAt      time.Time
}

func (Order) TableName() string {
	return "orders"
}

// Invoice represents an issued invoice.
type Invoice struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string              `gorm:"size:64;not null;index"`
	OrderID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	Order         *Order              `gorm:"constraint:OnDelete:RESTRICT"`
	UserID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	User          *User               `gorm:"constraint:OnDelete:RESTRICT"`
	FileURL       string              `gorm:"column:file_url;size:1024;not null"`
	Amount        decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	IssueDate     time.Time           `gorm:"not null;index"`
	Notes         *string             `gorm:"type:text"`
	CreatedAt     time.Time
}

func (Invoice) TableName() string {
	return "invoices"
}

// Mold represents a client mold kept in stock.
type Mold struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE"`
	Reference string    `gorm:"size:128;not null"`
	Name      string    `gorm:"size:255;not null"`
	PhotoURL  *string   `gorm:"column:photo_url;size:1024"`
	CreatedAt time.Time
}

func (Mold) TableName() string {
	return "molds"
}

// MetalAccount is the running balance of one user for one metal.
type MetalAccount struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_metal_accounts_user_type"`
	User         *User              `gorm:"constraint:OnDelete:CASCADE"`
	MetalType    string             `gorm:"size:16;not null;uniqueIndex:idx_metal_accounts_user_type"`
	Balance      decimal.Decimal    `gorm:"type:decimal(14,3);not null;default:0"`
	LastUpdate   time.Time          `gorm:"not null"`
	Transactions []MetalTransaction `gorm:"foreignKey:AccountID"`
}

func (MetalAccount) TableName() string {
	return "metal_accounts"
}

// MetalTransaction is an append-only ledger entry.
type MetalTransaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      string          `gorm:"size:8;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,3);not null"`
	Label     string          `gorm:"size:255;not null"`
	Date      time.Time       `gorm:"not null;index"`
}

func (MetalTransaction) TableName() string {
	return "metal_transactions"
}

// All lists every record in dependency order.
func All() []any {
	return []any{
		&User{},
		&Order{},
		&Invoice{},
		&Mold{},
		&MetalAccount{},
		&MetalTransaction{},
	}
}

// AutoMigrate creates or updates the schema for every record.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

// OwnerColumns is the slim user projection used when preloading owners.
func OwnerColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "email", "name", "company_name")
}

// Owner projects a preloaded user onto the slim owner view. It returns nil
// when the association was not loaded.
func (u *User) Owner() *dto.Owner {
	if u == nil {
		return nil
	}
	return &dto.Owner{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		CompanyName: u.CompanyName,
	}
}
