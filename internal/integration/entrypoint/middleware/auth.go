// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/application/adapter"
	domainerror "github.com/spa-management/backend/internal/domain/error"
	"github.com/spa-management/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// CustomerIDKey is the context key for the authenticated customer's ID.
	CustomerIDKey ContextKey = "customer_id"
	// CustomerEmailKey is the context key for the authenticated customer's email.
	CustomerEmailKey ContextKey = "customer_email"
)

// AuthMiddleware provides bearer-token authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces bearer-token
// authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(CustomerIDKey), claims.CustomerID)
		c.Set(string(CustomerEmailKey), claims.Email)

		c.Next()
	}
}

// GetCustomerIDFromContext extracts the customer ID from the Gin context.
func GetCustomerIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	customerID, exists := c.Get(string(CustomerIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := customerID.(uuid.UUID)
	return id, ok
}

// GetCustomerEmailFromContext extracts the customer email from the Gin context.
func GetCustomerEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(CustomerEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}
