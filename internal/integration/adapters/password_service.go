// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/pbkdf2"

	"github.com/spa-management/backend/internal/application/adapter"
	domainerror "github.com/spa-management/backend/internal/domain/error"
)

const (
	// keySize is the byte length of both the derived hash and the salt.
	keySize = 64
	// iterations is the PBKDF2 iteration count. Changing it (or the key
	// size or algorithm) invalidates every previously stored hash.
	iterations = 350000

	minPasswordLength = 8
	maxPasswordLength = 100
)

// passwordService implements the adapter.PasswordService interface using
// PBKDF2 with SHA-512.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword derives a salted hash from the password using a fresh
// cryptographically secure random salt. The plaintext is never retained.
func (s *passwordService) HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, keySize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	hash = pbkdf2.Key([]byte(password), salt, iterations, keySize, sha512.New)
	return hash, salt, nil
}

// VerifyPassword re-derives a hash from the candidate password and the stored
// salt with identical parameters and compares it in constant time.
func (s *passwordService) VerifyPassword(password string, hash, salt []byte) bool {
	candidate := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha512.New)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}

// ValidatePasswordStrength validates if a password meets the composition
// rules: 8-100 characters, at least one lowercase letter, one uppercase
// letter, one digit and one special character, and no whitespace.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if strings.TrimSpace(password) == "" {
		return domainerror.ErrEmptyPassword
	}

	length := len([]rune(password))
	if length < minPasswordLength || length > maxPasswordLength {
		return domainerror.ErrInvalidPasswordLength
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return domainerror.ErrInsufficientComplexity
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return domainerror.ErrInsufficientComplexity
	}

	return nil
}
