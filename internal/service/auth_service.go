package service

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopadmin/internal/auth"
	apperrors "shopadmin/internal/errors"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"
)

// LoginResult is what a successful login returns to the client: the account
// minus its secret, plus the signed session token.
type LoginResult struct {
	User  model.AdminInfo `json:"user"`
	Token string          `json:"token"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyToken(token string) (*auth.Claims, error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login authenticates an admin and issues a session token. All three failure
// branches (unknown email, inactive account, wrong password) collapse into
// apperrors.ErrInvalidCredentials so the response never reveals which one hit.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.ErrStoreUnavailable
	}

	if !admin.IsActive() {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Best effort: a failed timestamp write must not block token issuance.
	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		log.Printf("update last login for %s: %v", admin.Email, err)
	} else {
		admin.LastLogin = &now
	}

	token, err := s.jwtService.Issue(admin.ID.String(), admin.Email, string(admin.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: admin.Info(), Token: token}, nil
}

// VerifyToken checks a presented token's signature and expiry. It never
// touches the credential store: a deactivated account with an unexpired
// token still verifies until the token runs out.
func (s *authService) VerifyToken(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, apperrors.ErrTokenMissing
	}
	return s.jwtService.Verify(token)
}
