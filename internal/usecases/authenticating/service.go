// Package authenticating issues and validates session tokens for the single
// configured operator. Multi-tenant access control is deliberately out of
// scope; the API only distinguishes "authenticated" from "not".
package authenticating

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// Login checks the credentials against the configured operator and returns a
// signed session token.
func (s *Service) Login(username, password string) (string, error) {
	auth := s.cfg.Auth

	if auth.OperatorUsername == "" || auth.OperatorPasswordHash == "" {
		return "", ErrOperatorNotSet
	}

	if username != auth.OperatorUsername {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(auth.OperatorPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateJWT(username)
}

func (s *Service) generateJWT(username string) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
