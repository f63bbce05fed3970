package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/repository"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash is verified against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Principal is the authenticated caller carried by a token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == user.RoleAdmin
}

// CanAccess reports whether the caller may read a resource owned by ownerID.
func (p *Principal) CanAccess(ownerID uuid.UUID) bool {
	return p.IsAdmin() || (p != nil && p.UserID == ownerID)
}

// Service verifies credentials and issues and reads JWTs.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

func (s *Service) CheckPasswordHash(
	password, hash string,
) bool {
	return user.VerifyPassword(password, hash)
}

func (s *Service) ValidEmail(email string) bool {
	s.logger.Debug("ValidEmail called", "email", email)
	return utils.IsEmail(email)
}

// Login checks email and password. Rejected accounts are refused once the
// password has been verified.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "email", email)
	log.Debug("Login called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		u, err = repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
		if err != nil {
			return err
		}
		if u == nil {
			_ = utils.CheckPasswordHash(password, dummyHash)
			return user.ErrUserUnauthorized
		}
		if !user.VerifyPassword(password, u.PasswordHash) {
			return user.ErrUserUnauthorized
		}
		if u.Status == user.StatusRejected {
			return user.ErrUserRejected
		}
		return nil
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token for u.
func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    string(u.Role),
		"exp":     time.Now().Add(s.cfg.Expiry).Unix(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return tokenString, nil
}

// Principal extracts the caller from a verified token.
func (s *Service) Principal(token *jwt.Token) (*Principal, error) {
	if token == nil {
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, user.ErrUserUnauthorized
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &Principal{UserID: userID, Email: email, Role: user.Role(role)}, nil
}

// GetCurrentUserId returns the user ID carried by token.
func (s *Service) GetCurrentUserId(
	token *jwt.Token,
) (uuid.UUID, error) {
	p, err := s.Principal(token)
	if err != nil {
		s.logger.Error("GetCurrentUserId failed", "error", err)
		return uuid.Nil, err
	}
	return p.UserID, nil
}

// ParseToken verifies a raw token string with the configured secret.
func (s *Service) ParseToken(raw string) (*Principal, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, user.ErrUserUnauthorized
	}
	return s.Principal(token)
}
