package user

// RegisterInput is the admin-facing registration form. It carries no
// password; the account stays unusable until one is set.
type RegisterInput struct {
	Email          string `json:"email" validate:"required,email,max=254"`
	Name           string `json:"name" validate:"required,max=100"`
	CompanyName    string `json:"companyName" validate:"required,min=2,max=150"`
	Phone          string `json:"phone" validate:"required,min=6,max=30"`
	Address        string `json:"address" validate:"required,min=6,max=255"`
	KbisFileURL    string `json:"kbisFileUrl" validate:"required,fileref"`
	CustomsFileURL string `json:"customsFileUrl" validate:"required,fileref"`
}

// ProfileInput holds the editable profile fields. Omitted fields are kept.
type ProfileInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	CompanyName *string `json:"companyName" validate:"omitempty,min=2,max=150"`
	Phone       *string `json:"phone" validate:"omitempty,min=6,max=30"`
	Address     *string `json:"address" validate:"omitempty,min=6,max=255"`
}

// PasswordInput is the body of a password change.
type PasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=72"`
	NewPassword     string `json:"newPassword" validate:"required,max=72,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// DocumentsInput replaces the verification documents.
type DocumentsInput struct {
	KbisFileURL    *string `json:"kbisFileUrl" validate:"omitempty,fileref"`
	CustomsFileURL *string `json:"customsFileUrl" validate:"omitempty,fileref"`
}

// StatusInput is an admin review decision.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACTIVE REJECTED"`
}
