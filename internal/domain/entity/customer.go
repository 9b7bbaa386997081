// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender values accepted for a customer, stored case-normalized.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Identity is the root account record: credentials plus lifecycle flags.
// Its email, phone and credential material are validated once at
// construction; no mutation path exists for them afterwards.
type Identity struct {
	ID                   uuid.UUID
	Email                string
	PasswordSalt         []byte
	PasswordHash         []byte
	PhoneNumber          string
	EmailConfirmed       bool
	PhoneNumberConfirmed bool
	TwoFactorEnabled     bool
	AccessFailedCount    int
	LockoutEnabled       bool
	LockoutEnd           *time.Time
	CreatedAt            time.Time
	LastUpdateAt         time.Time
	// DeactivatedAt is carried for the schema but never set by any
	// operation; there is no deactivation workflow.
	DeactivatedAt *time.Time
}

// Customer is the sole concrete identity specialization, carrying the
// personal profile fields.
type Customer struct {
	Identity
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth time.Time
	Preferences *string
	// Notes is internal-only and never exposed outside the entity.
	Notes *string
}

// NewCustomer constructs a fully validated customer. It fails fast on the
// first invalid field: the entity is either completely valid or not
// constructed at all.
func NewCustomer(
	id uuid.UUID,
	email string,
	passwordSalt, passwordHash []byte,
	phoneNumber, firstName, lastName, gender string,
	dateOfBirth time.Time,
	preferences, notes *string,
) (*Customer, error) {
	if err := validateIdentifier(id); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateCredentialMaterial("password salt", passwordSalt); err != nil {
		return nil, err
	}
	if err := validateCredentialMaterial("password hash", passwordHash); err != nil {
		return nil, err
	}
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if err := validateName("first name", firstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", lastName); err != nil {
		return nil, err
	}
	if err := validateGender(gender); err != nil {
		return nil, err
	}
	if err := validateDateOfBirth(dateOfBirth); err != nil {
		return nil, err
	}
	if err := validateFreeText("preferences", preferences); err != nil {
		return nil, err
	}
	if err := validateFreeText("notes", notes); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Customer{
		Identity: Identity{
			ID:           id,
			Email:        email,
			PasswordSalt: passwordSalt,
			PasswordHash: passwordHash,
			PhoneNumber:  phoneNumber,
			CreatedAt:    now,
			LastUpdateAt: now,
		},
		FirstName:   firstName,
		LastName:    lastName,
		Gender:      strings.ToLower(gender),
		DateOfBirth: dateOfBirth,
		Preferences: preferences,
		Notes:       notes,
	}, nil
}

// UpdateBasicInformationInput carries optional replacement values for the
// customer's mutable profile fields. A nil field leaves the current value
// untouched.
type UpdateBasicInformationInput struct {
	FirstName   *string
	LastName    *string
	Gender      *string
	DateOfBirth *time.Time
	Preferences *string
}

// UpdateBasicInformation applies the supplied replacement values. The update
// is all-or-nothing: every supplied field is validated before any assignment,
// so a rejected field never leaves the entity partially mutated. It returns
// true and advances LastUpdateAt when at least one field was applied, and
// false with the timestamp untouched when nothing was supplied.
func (c *Customer) UpdateBasicInformation(input UpdateBasicInformationInput) (bool, error) {
	if input.FirstName != nil {
		if err := validateName("first name", *input.FirstName); err != nil {
			return false, err
		}
	}
	if input.LastName != nil {
		if err := validateName("last name", *input.LastName); err != nil {
			return false, err
		}
	}
	if input.Gender != nil {
		if err := validateGender(*input.Gender); err != nil {
			return false, err
		}
	}
	if input.DateOfBirth != nil {
		if err := validateDateOfBirth(*input.DateOfBirth); err != nil {
			return false, err
		}
	}
	if err := validateFreeText("preferences", input.Preferences); err != nil {
		return false, err
	}

	updated := false

	if input.FirstName != nil {
		c.FirstName = *input.FirstName
		updated = true
	}
	if input.LastName != nil {
		c.LastName = *input.LastName
		updated = true
	}
	if input.Gender != nil {
		c.Gender = strings.ToLower(*input.Gender)
		updated = true
	}
	if input.DateOfBirth != nil {
		c.DateOfBirth = *input.DateOfBirth
		updated = true
	}
	if input.Preferences != nil {
		c.Preferences = input.Preferences
		updated = true
	}

	if updated {
		c.LastUpdateAt = time.Now().UTC()
	}

	return updated, nil
}
