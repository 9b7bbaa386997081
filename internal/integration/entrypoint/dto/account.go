// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spa-management/backend/internal/application/usecase/account"
)

// DateOnlyFormat is the wire format for date-of-birth values.
const DateOnlyFormat = "2006-01-02"

// RegisterRequest represents the request body for customer registration.
type RegisterRequest struct {
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Gender      string  `json:"gender" binding:"required"`
	DateOfBirth string  `json:"date_of_birth" binding:"required"`
	Preferences *string `json:"preferences"`
}

// LoginRequest represents the request body for customer login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token and its expiry.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateProfileRequest represents the request body for profile updates.
// Absent fields are left untouched.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
	Preferences *string `json:"preferences"`
}

// ProfileResponse represents the customer profile in API responses. Password
// material and internal notes are never included.
type ProfileResponse struct {
	ID                   string  `json:"id"`
	Email                string  `json:"email"`
	PhoneNumber          string  `json:"phone_number"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	Gender               string  `json:"gender"`
	DateOfBirth          string  `json:"date_of_birth"`
	Preferences          *string `json:"preferences,omitempty"`
	EmailConfirmed       bool    `json:"email_confirmed"`
	PhoneNumberConfirmed bool    `json:"phone_number_confirmed"`
	TwoFactorEnabled     bool    `json:"two_factor_enabled"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ToProfileResponse converts a profile projection to a ProfileResponse DTO.
func ToProfileResponse(profile *account.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		ID:                   profile.ID.String(),
		Email:                profile.Email,
		PhoneNumber:          profile.PhoneNumber,
		FirstName:            profile.FirstName,
		LastName:             profile.LastName,
		Gender:               profile.Gender,
		DateOfBirth:          profile.DateOfBirth.Format(DateOnlyFormat),
		Preferences:          profile.Preferences,
		EmailConfirmed:       profile.EmailConfirmed,
		PhoneNumberConfirmed: profile.PhoneNumberConfirmed,
		TwoFactorEnabled:     profile.TwoFactorEnabled,
	}
}
