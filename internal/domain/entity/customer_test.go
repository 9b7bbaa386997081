package entity

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/spa-management/backend/internal/domain/error"
)

type customerArgs struct {
	id           uuid.UUID
	email        string
	passwordSalt []byte
	passwordHash []byte
	phoneNumber  string
	firstName    string
	lastName     string
	gender       string
	dateOfBirth  time.Time
	preferences  *string
	notes        *string
}

func validCustomerArgs() customerArgs {
	preferences := "ExamplePreferences"
	notes := "ExampleNotes"
	return customerArgs{
		id:           uuid.New(),
		email:        "example@mail.com",
		passwordSalt: make([]byte, 64),
		passwordHash: make([]byte, 64),
		phoneNumber:  "123456789",
		firstName:    "TestFirstName",
		lastName:     "TestLastName",
		gender:       "male",
		dateOfBirth:  time.Now().UTC().AddDate(0, 0, -1),
		preferences:  &preferences,
		notes:        &notes,
	}
}

func build(args customerArgs) (*Customer, error) {
	return NewCustomer(
		args.id,
		args.email,
		args.passwordSalt,
		args.passwordHash,
		args.phoneNumber,
		args.firstName,
		args.lastName,
		args.gender,
		args.dateOfBirth,
		args.preferences,
		args.notes,
	)
}

func mustBuild(t *testing.T, args customerArgs) *Customer {
	t.Helper()
	customer, err := build(args)
	if err != nil {
		t.Fatalf("unexpected error constructing customer: %v", err)
	}
	return customer
}

func TestNewCustomer_SetsProperties(t *testing.T) {
	args := validCustomerArgs()
	customer := mustBuild(t, args)

	if customer.ID != args.id {
		t.Errorf("expected id %s, got %s", args.id, customer.ID)
	}
	if customer.Email != args.email {
		t.Errorf("expected email %s, got %s", args.email, customer.Email)
	}
	if customer.PhoneNumber != args.phoneNumber {
		t.Errorf("expected phone number %s, got %s", args.phoneNumber, customer.PhoneNumber)
	}
	if customer.FirstName != args.firstName {
		t.Errorf("expected first name %s, got %s", args.firstName, customer.FirstName)
	}
	if customer.LastName != args.lastName {
		t.Errorf("expected last name %s, got %s", args.lastName, customer.LastName)
	}
	if customer.Gender != "male" {
		t.Errorf("expected gender male, got %s", customer.Gender)
	}
	if !customer.DateOfBirth.Equal(args.dateOfBirth) {
		t.Errorf("expected date of birth %v, got %v", args.dateOfBirth, customer.DateOfBirth)
	}
	if customer.Preferences == nil || *customer.Preferences != *args.preferences {
		t.Errorf("expected preferences %q", *args.preferences)
	}
	if customer.Notes == nil || *customer.Notes != *args.notes {
		t.Errorf("expected notes %q", *args.notes)
	}

	// Lifecycle defaults
	if customer.EmailConfirmed || customer.PhoneNumberConfirmed || customer.TwoFactorEnabled {
		t.Error("expected all confirmation flags to default to false")
	}
	if customer.AccessFailedCount != 0 {
		t.Errorf("expected zero failed-access count, got %d", customer.AccessFailedCount)
	}
	if customer.LockoutEnabled || customer.LockoutEnd != nil {
		t.Error("expected lockout to default to disabled")
	}
	if customer.DeactivatedAt != nil {
		t.Error("expected deactivated-at to default to nil")
	}
	if customer.CreatedAt.IsZero() {
		t.Error("expected created-at to be set")
	}
	if !customer.LastUpdateAt.Equal(customer.CreatedAt) {
		t.Error("expected last-update-at to equal created-at on construction")
	}
}

func TestNewCustomer_IdentifierValidation(t *testing.T) {
	args := validCustomerArgs()
	args.id = uuid.Nil

	if _, err := build(args); !errors.Is(err, domainerror.ErrMissingIdentifier) {
		t.Errorf("expected ErrMissingIdentifier, got %v", err)
	}
}

func TestNewCustomer_EmailValidation(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		for _, email := range []string{"", " ", "\t"} {
			args := validCustomerArgs()
			args.email = email
			if _, err := build(args); !errors.Is(err, domainerror.ErrMissingEmail) {
				t.Errorf("email %q: expected ErrMissingEmail, got %v", email, err)
			}
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		invalidEmails := []string{
			"@",
			"@example",
			"example@",
			"example@e@example.com",
			"example@example",
			"example.example.com",
			"@example.com",
			"example@.com",
			"example.com@",
			"exa mple@example.com",
			"example@exa mple.com",
			"example@example..com",
			"example@example.com.",
			" example@example.com",
			" example@example.com ",
			"a@b",
			"a@b.c.",
			"a b@b.com",
		}

		for _, email := range invalidEmails {
			args := validCustomerArgs()
			args.email = email
			if _, err := build(args); !errors.Is(err, domainerror.ErrInvalidEmailFormat) {
				t.Errorf("email %q: expected ErrInvalidEmailFormat, got %v", email, err)
			}
		}
	})

	t.Run("valid formats", func(t *testing.T) {
		validEmails := []string{
			"a@b.com",
			"example@mail.com",
			"first.last@example.co.uk",
			"user_name-1@my-domain.org",
		}

		for _, email := range validEmails {
			args := validCustomerArgs()
			args.email = email
			if _, err := build(args); err != nil {
				t.Errorf("email %q: expected success, got %v", email, err)
			}
		}
	})
}

func TestNewCustomer_CredentialMaterialValidation(t *testing.T) {
	t.Run("missing hash", func(t *testing.T) {
		args := validCustomerArgs()
		args.passwordHash = nil
		if _, err := build(args); !errors.Is(err, domainerror.ErrMissingCredentialMaterial) {
			t.Errorf("expected ErrMissingCredentialMaterial, got %v", err)
		}
	})

	t.Run("missing salt", func(t *testing.T) {
		args := validCustomerArgs()
		args.passwordSalt = []byte{}
		if _, err := build(args); !errors.Is(err, domainerror.ErrMissingCredentialMaterial) {
			t.Errorf("expected ErrMissingCredentialMaterial, got %v", err)
		}
	})
}

func TestNewCustomer_PhoneNumberValidation(t *testing.T) {
	t.Run("missing phone number", func(t *testing.T) {
		for _, phone := range []string{"", " "} {
			args := validCustomerArgs()
			args.phoneNumber = phone
			if _, err := build(args); !errors.Is(err, domainerror.ErrMissingPhoneNumber) {
				t.Errorf("phone %q: expected ErrMissingPhoneNumber, got %v", phone, err)
			}
		}
	})

	t.Run("non-digit characters", func(t *testing.T) {
		for _, phone := range []string{"123-45609", "12345a", "+48123456789", "123 456"} {
			args := validCustomerArgs()
			args.phoneNumber = phone
			if _, err := build(args); !errors.Is(err, domainerror.ErrInvalidPhoneNumberFormat) {
				t.Errorf("phone %q: expected ErrInvalidPhoneNumberFormat, got %v", phone, err)
			}
		}
	})
}

func TestNewCustomer_NameValidation(t *testing.T) {
	t.Run("missing names", func(t *testing.T) {
		for _, name := range []string{"", " "} {
			args := validCustomerArgs()
			args.firstName = name
			if _, err := build(args); !errors.Is(err, domainerror.ErrMissingName) {
				t.Errorf("first name %q: expected ErrMissingName, got %v", name, err)
			}

			args = validCustomerArgs()
			args.lastName = name
			if _, err := build(args); !errors.Is(err, domainerror.ErrMissingName) {
				t.Errorf("last name %q: expected ErrMissingName, got %v", name, err)
			}
		}
	})

	t.Run("invalid characters", func(t *testing.T) {
		for _, name := range []string{"Name1", "Name!", "Na-me", "Nam_e"} {
			args := validCustomerArgs()
			args.firstName = name
			if _, err := build(args); !errors.Is(err, domainerror.ErrInvalidNameFormat) {
				t.Errorf("first name %q: expected ErrInvalidNameFormat, got %v", name, err)
			}
		}
	})

	t.Run("letters spaces and periods allowed", func(t *testing.T) {
		args := validCustomerArgs()
		args.firstName = "Mary Jane"
		args.lastName = "St. James"
		if _, err := build(args); err != nil {
			t.Errorf("expected success, got %v", err)
		}
	})
}

func TestNewCustomer_GenderValidation(t *testing.T) {
	t.Run("missing gender", func(t *testing.T) {
		args := validCustomerArgs()
		args.gender = ""
		if _, err := build(args); !errors.Is(err, domainerror.ErrMissingGender) {
			t.Errorf("expected ErrMissingGender, got %v", err)
		}
	})

	t.Run("case-normalized on store", func(t *testing.T) {
		args := validCustomerArgs()
		args.gender = "MALE"
		customer := mustBuild(t, args)
		if customer.Gender != "male" {
			t.Errorf("expected gender normalized to male, got %s", customer.Gender)
		}

		args.gender = "Female"
		customer = mustBuild(t, args)
		if customer.Gender != "female" {
			t.Errorf("expected gender normalized to female, got %s", customer.Gender)
		}
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		args := validCustomerArgs()
		args.gender = "other"
		if _, err := build(args); !errors.Is(err, domainerror.ErrInvalidGenderValue) {
			t.Errorf("expected ErrInvalidGenderValue, got %v", err)
		}
	})
}

func TestNewCustomer_DateOfBirthValidation(t *testing.T) {
	t.Run("zero date rejected", func(t *testing.T) {
		args := validCustomerArgs()
		args.dateOfBirth = time.Time{}
		if _, err := build(args); !errors.Is(err, domainerror.ErrMissingDateOfBirth) {
			t.Errorf("expected ErrMissingDateOfBirth, got %v", err)
		}
	})

	t.Run("tomorrow rejected", func(t *testing.T) {
		args := validCustomerArgs()
		args.dateOfBirth = time.Now().UTC().AddDate(0, 0, 1)
		if _, err := build(args); !errors.Is(err, domainerror.ErrFutureDateOfBirth) {
			t.Errorf("expected ErrFutureDateOfBirth, got %v", err)
		}
	})

	t.Run("today accepted", func(t *testing.T) {
		args := validCustomerArgs()
		args.dateOfBirth = time.Now().UTC()
		if _, err := build(args); err != nil {
			t.Errorf("expected success, got %v", err)
		}
	})
}

func TestNewCustomer_FreeTextValidation(t *testing.T) {
	t.Run("exactly 1000 characters accepted", func(t *testing.T) {
		text := strings.Repeat("a", 1000)
		args := validCustomerArgs()
		args.preferences = &text
		if _, err := build(args); err != nil {
			t.Errorf("expected success, got %v", err)
		}
	})

	t.Run("1001 characters rejected", func(t *testing.T) {
		text := strings.Repeat("a", 1001)

		args := validCustomerArgs()
		args.preferences = &text
		if _, err := build(args); !errors.Is(err, domainerror.ErrFieldTooLong) {
			t.Errorf("preferences: expected ErrFieldTooLong, got %v", err)
		}

		args = validCustomerArgs()
		args.notes = &text
		if _, err := build(args); !errors.Is(err, domainerror.ErrFieldTooLong) {
			t.Errorf("notes: expected ErrFieldTooLong, got %v", err)
		}
	})

	t.Run("nil optional fields accepted", func(t *testing.T) {
		args := validCustomerArgs()
		args.preferences = nil
		args.notes = nil
		if _, err := build(args); err != nil {
			t.Errorf("expected success, got %v", err)
		}
	})
}

func TestUpdateBasicInformation_NoFields(t *testing.T) {
	customer := mustBuild(t, validCustomerArgs())
	before := *customer

	updated, err := customer.UpdateBasicInformation(UpdateBasicInformationInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Error("expected updated to be false when no fields are supplied")
	}
	if customer.FirstName != before.FirstName || customer.LastName != before.LastName ||
		customer.Gender != before.Gender || !customer.DateOfBirth.Equal(before.DateOfBirth) {
		t.Error("expected no field to change")
	}
	if !customer.LastUpdateAt.Equal(before.LastUpdateAt) {
		t.Error("expected LastUpdateAt to be untouched")
	}
}

func TestUpdateBasicInformation_SingleField(t *testing.T) {
	customer := mustBuild(t, validCustomerArgs())
	before := *customer
	newName := "Updated"

	updated, err := customer.UpdateBasicInformation(UpdateBasicInformationInput{
		FirstName: &newName,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated {
		t.Error("expected updated to be true")
	}
	if customer.FirstName != newName {
		t.Errorf("expected first name %q, got %q", newName, customer.FirstName)
	}
	if customer.LastName != before.LastName || customer.Gender != before.Gender ||
		!customer.DateOfBirth.Equal(before.DateOfBirth) {
		t.Error("expected other fields to be unchanged")
	}
	if !customer.LastUpdateAt.After(before.LastUpdateAt) && !customer.LastUpdateAt.Equal(before.LastUpdateAt) {
		t.Error("expected LastUpdateAt to advance")
	}
	if customer.LastUpdateAt.Before(before.LastUpdateAt) {
		t.Error("expected LastUpdateAt to be monotonic")
	}
}

func TestUpdateBasicInformation_GenderNormalized(t *testing.T) {
	customer := mustBuild(t, validCustomerArgs())
	gender := "FEMALE"

	updated, err := customer.UpdateBasicInformation(UpdateBasicInformationInput{
		Gender: &gender,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated {
		t.Error("expected updated to be true")
	}
	if customer.Gender != "female" {
		t.Errorf("expected gender normalized to female, got %s", customer.Gender)
	}
}

func TestUpdateBasicInformation_AllOrNothing(t *testing.T) {
	customer := mustBuild(t, validCustomerArgs())
	before := *customer

	validName := "Updated"
	invalidGender := "other"

	updated, err := customer.UpdateBasicInformation(UpdateBasicInformationInput{
		FirstName: &validName,
		Gender:    &invalidGender,
	})
	if !errors.Is(err, domainerror.ErrInvalidGenderValue) {
		t.Fatalf("expected ErrInvalidGenderValue, got %v", err)
	}
	if updated {
		t.Error("expected updated to be false on validation failure")
	}

	// The valid field supplied alongside the invalid one must not have been applied.
	if customer.FirstName != before.FirstName {
		t.Errorf("expected first name to stay %q, got %q", before.FirstName, customer.FirstName)
	}
	if !customer.LastUpdateAt.Equal(before.LastUpdateAt) {
		t.Error("expected LastUpdateAt to be untouched on validation failure")
	}
}

func TestUpdateBasicInformation_PreferencesTooLong(t *testing.T) {
	customer := mustBuild(t, validCustomerArgs())
	text := strings.Repeat("a", 1001)

	if _, err := customer.UpdateBasicInformation(UpdateBasicInformationInput{
		Preferences: &text,
	}); !errors.Is(err, domainerror.ErrFieldTooLong) {
		t.Errorf("expected ErrFieldTooLong, got %v", err)
	}
}
