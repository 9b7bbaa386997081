// Package account contains the customer account use cases.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/application/adapter"
	"github.com/spa-management/backend/internal/domain/entity"
	domainerror "github.com/spa-management/backend/internal/domain/error"
)

// RegisterCustomerInput represents the input for customer registration.
type RegisterCustomerInput struct {
	Email       string
	Password    string
	PhoneNumber string
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth time.Time
	Preferences *string
}

// RegisterCustomerUseCase handles customer registration logic.
type RegisterCustomerUseCase struct {
	customerRepo    adapter.CustomerRepository
	passwordService adapter.PasswordService
}

// NewRegisterCustomerUseCase creates a new RegisterCustomerUseCase instance.
func NewRegisterCustomerUseCase(
	customerRepo adapter.CustomerRepository,
	passwordService adapter.PasswordService,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customerRepo:    customerRepo,
		passwordService: passwordService,
	}
}

// Execute performs the customer registration. Any validation failure aborts
// before persistence; a unique-constraint violation at commit time is
// reported the same way as a duplicate found during the lookup, which closes
// the check-then-act window between concurrent registrations.
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, input RegisterCustomerInput) error {
	normalizedEmail := strings.Trim(input.Email, " \n\t")
	if normalizedEmail == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeMissingEmail,
			"email is required",
			domainerror.ErrMissingEmail,
		)
	}

	exists, err := uc.customerRepo.ExistsByEmail(ctx, normalizedEmail)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return uc.duplicateError(normalizedEmail)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			err,
		)
	}

	passwordHash, passwordSalt, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	customer, err := entity.NewCustomer(
		uuid.New(),
		normalizedEmail,
		passwordSalt,
		passwordHash,
		input.PhoneNumber,
		input.FirstName,
		input.LastName,
		input.Gender,
		input.DateOfBirth,
		input.Preferences,
		nil,
	)
	if err != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidField,
			"invalid registration data",
			err,
		)
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return uc.duplicateError(normalizedEmail)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (uc *RegisterCustomerUseCase) duplicateError(email string) error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeEmailExists,
		fmt.Sprintf("customer with email '%s' already exists", email),
		domainerror.ErrEmailAlreadyExists,
	)
}
