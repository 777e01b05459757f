package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "shopadmin/internal/errors"
)

// TokenExpiry is the fixed lifetime of an issued token.
const TokenExpiry = 30 * 24 * time.Hour

// Claims is the claims set embedded in every issued token.
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies tokens with a single static symmetric key.
// Issuance and verification must use byte-identical secrets; there is no key
// rotation and tokens are never stored server-side.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithClock overrides the service clock, for tests that simulate expiry.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

// Issue signs a token for the given identity. Issued-at is set to the current
// time and expiry to issued-at plus TokenExpiry. The session ID is derived
// from the subject and the issue timestamp.
func (s *JWTService) Issue(userID, email, role string) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		SessionID: sessionID(userID, now),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token's signature and expiry and returns its claims.
// It returns apperrors.ErrTokenExpired past expiry and apperrors.ErrTokenInvalid
// for any other failure; it never panics and has no side effects.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// sessionID derives a per-session identifier from the subject and issue time.
func sessionID(userID string, ts time.Time) string {
	return fmt.Sprintf("%s_%d", userID, ts.UnixMilli())
}
