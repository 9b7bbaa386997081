package adapter

import (
	"time"

	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/domain/entity"
)

// Token is a signed bearer token together with its expiry timestamp.
type Token struct {
	SignedToken string
	ExpiresAt   time.Time
}

// TokenClaims carries the identity bound into a validated token.
type TokenClaims struct {
	CustomerID uuid.UUID
	Email      string
	ExpiresAt  time.Time
}

// TokenService defines the interface for issuing and validating bearer tokens.
type TokenService interface {
	// CreateToken builds a signed, time-bounded bearer token for the given
	// customer, binding their id and email into the claims.
	CreateToken(customer *entity.Customer) (*Token, error)

	// ValidateToken parses and verifies a presented token and returns its claims.
	ValidateToken(token string) (*TokenClaims, error)
}
