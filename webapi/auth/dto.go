package auth

// RegisterInput is the body of a self-service registration.
type RegisterInput struct {
	Email          string `json:"email" validate:"required,email,max=254"`
	Password       string `json:"password" validate:"required,min=6,max=72"`
	Name           string `json:"name" validate:"required,max=100"`
	CompanyName    string `json:"companyName" validate:"required,min=2,max=150"`
	Phone          string `json:"phone" validate:"required,min=6,max=30"`
	Address        string `json:"address" validate:"required,min=6,max=255"`
	KbisFileURL    string `json:"kbisFileUrl" validate:"required,fileref"`
	CustomsFileURL string `json:"customsFileUrl" validate:"required,fileref"`
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginUser is the identity returned alongside the token.
type LoginUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	CompanyName string `json:"companyName"`
}

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
