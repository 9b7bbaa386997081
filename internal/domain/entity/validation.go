package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	domainerror "github.com/spa-management/backend/internal/domain/error"
)

// maxFreeTextLength bounds the optional preferences and notes fields.
const maxFreeTextLength = 1000

// Field format patterns, compiled once at startup.
var (
	// emailPattern accepts word characters, dots and hyphens in the local
	// part and domain, and requires at least one 2-3 letter TLD segment.
	emailPattern = regexp.MustCompile(`^\w+([-.]\w+)*@\w+([-.]\w+)*(\.[a-zA-Z]{2,3})+$`)

	phonePattern = regexp.MustCompile(`^[0-9]+$`)

	namePattern = regexp.MustCompile(`^[a-zA-Z .]+$`)
)

func validateIdentifier(id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerror.ErrMissingIdentifier
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return domainerror.ErrMissingEmail
	}
	if strings.ContainsAny(email, " \t\n\r") || !emailPattern.MatchString(email) {
		return domainerror.ErrInvalidEmailFormat
	}
	return nil
}

func validateCredentialMaterial(field string, material []byte) error {
	if len(material) == 0 {
		return fmt.Errorf("%s: %w", field, domainerror.ErrMissingCredentialMaterial)
	}
	return nil
}

func validatePhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return domainerror.ErrMissingPhoneNumber
	}
	if !phonePattern.MatchString(phoneNumber) {
		return domainerror.ErrInvalidPhoneNumberFormat
	}
	return nil
}

func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s: %w", field, domainerror.ErrMissingName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%s: %w", field, domainerror.ErrInvalidNameFormat)
	}
	return nil
}

// validateGender checks the case-normalized value; callers store the
// normalized form.
func validateGender(gender string) error {
	if strings.TrimSpace(gender) == "" {
		return domainerror.ErrMissingGender
	}
	switch strings.ToLower(gender) {
	case GenderMale, GenderFemale:
		return nil
	default:
		return domainerror.ErrInvalidGenderValue
	}
}

func validateDateOfBirth(dateOfBirth time.Time) error {
	if dateOfBirth.IsZero() {
		return domainerror.ErrMissingDateOfBirth
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if dateOfBirth.UTC().Truncate(24 * time.Hour).After(today) {
		return domainerror.ErrFutureDateOfBirth
	}
	return nil
}

// validateFreeText bounds optional fields such as preferences and notes.
// A nil value is always valid.
func validateFreeText(field string, value *string) error {
	if value == nil {
		return nil
	}
	if utf8.RuneCountInString(*value) > maxFreeTextLength {
		return fmt.Errorf("%s: %w", field, domainerror.ErrFieldTooLong)
	}
	return nil
}
