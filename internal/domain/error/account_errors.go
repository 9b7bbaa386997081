// Package error defines domain-specific errors for the customer account core.
package error

import "errors"

// Entity validation errors. Each field violation maps to a distinct kind so
// callers can tell "missing" apart from "malformed".
var (
	// ErrMissingIdentifier is returned when the identity id is the zero UUID.
	ErrMissingIdentifier = errors.New("identifier is missing")

	// ErrMissingEmail is returned when the email is empty or blank.
	ErrMissingEmail = errors.New("email is missing")

	// ErrInvalidEmailFormat is returned when the email does not match the accepted format.
	ErrInvalidEmailFormat = errors.New("invalid email format")

	// ErrMissingCredentialMaterial is returned when the password hash or salt is empty.
	ErrMissingCredentialMaterial = errors.New("credential material is missing")

	// ErrMissingPhoneNumber is returned when the phone number is empty or blank.
	ErrMissingPhoneNumber = errors.New("phone number is missing")

	// ErrInvalidPhoneNumberFormat is returned when the phone number contains non-digits.
	ErrInvalidPhoneNumberFormat = errors.New("invalid phone number format")

	// ErrMissingName is returned when a first or last name is empty or blank.
	ErrMissingName = errors.New("name is missing")

	// ErrInvalidNameFormat is returned when a name contains characters other than letters, spaces and periods.
	ErrInvalidNameFormat = errors.New("invalid name format")

	// ErrMissingGender is returned when the gender is empty or blank.
	ErrMissingGender = errors.New("gender is missing")

	// ErrInvalidGenderValue is returned when the gender is neither "male" nor "female".
	ErrInvalidGenderValue = errors.New("invalid gender value")

	// ErrMissingDateOfBirth is returned when the date of birth is the zero date.
	ErrMissingDateOfBirth = errors.New("date of birth is missing")

	// ErrFutureDateOfBirth is returned when the date of birth is after the current UTC date.
	ErrFutureDateOfBirth = errors.New("date of birth cannot be in the future")

	// ErrFieldTooLong is returned when an optional free-text field exceeds its length limit.
	ErrFieldTooLong = errors.New("field exceeds maximum length")
)

// Password strength errors.
var (
	// ErrEmptyPassword is returned when the password is empty or blank.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrInvalidPasswordLength is returned when the password is not 8-100 characters long.
	ErrInvalidPasswordLength = errors.New("password must be between 8 and 100 characters long")

	// ErrInsufficientComplexity is returned when the password lacks a required
	// character class or contains whitespace.
	ErrInsufficientComplexity = errors.New("password must contain at least one lowercase letter, one uppercase letter, one digit and one special character, without whitespace")
)

// Workflow errors.
var (
	// ErrCustomerNotFound is returned when a customer is not found in the system.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login failure. The same error is
	// used for unknown emails and wrong passwords so account existence never
	// leaks through the error surface.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token issuance errors.
var (
	// ErrMissingIdentity is returned when a token is requested for a nil customer.
	ErrMissingIdentity = errors.New("identity is missing")

	// ErrInvalidIdentityID is returned when a token is requested for a customer with a zero id.
	ErrInvalidIdentityID = errors.New("identity id is empty")

	// ErrInvalidToken is returned when a presented token is invalid, expired or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingConfiguration is a fatal startup error raised when the JWT
	// configuration is absent or invalid.
	ErrMissingConfiguration = errors.New("missing or invalid configuration")
)

// AccountErrorCode defines error codes for account workflow errors.
// Format: ACCT-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists   AccountErrorCode = "ACCT-010001"
	ErrCodeMissingEmail  AccountErrorCode = "ACCT-010002"
	ErrCodeWeakPassword  AccountErrorCode = "ACCT-010003"
	ErrCodeMissingFields AccountErrorCode = "ACCT-010004"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AccountErrorCode = "ACCT-020001"
	ErrCodeRateLimited        AccountErrorCode = "ACCT-020002"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AccountErrorCode = "ACCT-030001"
	ErrCodeMissingToken AccountErrorCode = "ACCT-030002"

	// Profile errors (04XXXX)
	ErrCodeCustomerNotFound AccountErrorCode = "ACCT-040001"
	ErrCodeInvalidField     AccountErrorCode = "ACCT-040002"
)

// AccountError represents an account workflow error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is one of the field-level validation
// errors that are safe to surface verbatim to callers.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrMissingIdentifier,
		ErrMissingEmail,
		ErrInvalidEmailFormat,
		ErrMissingCredentialMaterial,
		ErrMissingPhoneNumber,
		ErrInvalidPhoneNumberFormat,
		ErrMissingName,
		ErrInvalidNameFormat,
		ErrMissingGender,
		ErrInvalidGenderValue,
		ErrMissingDateOfBirth,
		ErrFutureDateOfBirth,
		ErrFieldTooLong,
		ErrEmptyPassword,
		ErrInvalidPasswordLength,
		ErrInsufficientComplexity,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
