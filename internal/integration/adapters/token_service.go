// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spa-management/backend/config"
	"github.com/spa-management/backend/internal/application/adapter"
	"github.com/spa-management/backend/internal/domain/entity"
	domainerror "github.com/spa-management/backend/internal/domain/error"
)

// CustomClaims represents the claims bound into issued tokens. The customer
// id is carried both as the registered subject and as the name/nameid pair.
type CustomClaims struct {
	Name   string `json:"name"`
	NameID string `json:"nameid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface using
// HMAC-SHA512 signed JWTs.
type tokenService struct {
	key      []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewTokenService creates a new token service instance. The configuration is
// validated eagerly: a missing key, issuer or audience, or a non-positive
// expiry, is a fatal startup error rather than a per-call error.
func NewTokenService(cfg config.JWTConfig) (adapter.TokenService, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("JWT key: %w", domainerror.ErrMissingConfiguration)
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("JWT issuer: %w", domainerror.ErrMissingConfiguration)
	}
	if cfg.Audience == "" {
		return nil, fmt.Errorf("JWT audience: %w", domainerror.ErrMissingConfiguration)
	}
	if cfg.ExpiryMinutes <= 0 {
		return nil, fmt.Errorf("JWT expiry minutes: %w", domainerror.ErrMissingConfiguration)
	}

	return &tokenService{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		expiry:   time.Duration(cfg.ExpiryMinutes) * time.Minute,
	}, nil
}

// CreateToken builds a signed bearer token for the customer.
func (s *tokenService) CreateToken(customer *entity.Customer) (*adapter.Token, error) {
	if customer == nil {
		return nil, domainerror.ErrMissingIdentity
	}
	if customer.ID == uuid.Nil {
		return nil, domainerror.ErrInvalidIdentityID
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.expiry)

	claims := CustomClaims{
		Name:   customer.ID.String(),
		NameID: customer.ID.String(),
		Email:  customer.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customer.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &adapter.Token{
		SignedToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}

// ValidateToken parses and verifies a presented token and returns its claims.
func (s *tokenService) ValidateToken(tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.key, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	customerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject: %w", domainerror.ErrInvalidToken, err)
	}

	return &adapter.TokenClaims{
		CustomerID: customerID,
		Email:      claims.Email,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
