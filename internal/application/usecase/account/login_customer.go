package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spa-management/backend/internal/application/adapter"
	domainerror "github.com/spa-management/backend/internal/domain/error"
)

// LoginCustomerInput represents the input for customer login.
type LoginCustomerInput struct {
	Email    string
	Password string
}

// LoginCustomerOutput represents the output of a successful login.
type LoginCustomerOutput struct {
	Token     string
	ExpiresAt time.Time
}

// LoginCustomerUseCase handles customer login logic.
type LoginCustomerUseCase struct {
	customerRepo    adapter.CustomerRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginCustomerUseCase creates a new LoginCustomerUseCase instance.
func NewLoginCustomerUseCase(
	customerRepo adapter.CustomerRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginCustomerUseCase {
	return &LoginCustomerUseCase{
		customerRepo:    customerRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the customer login. An unknown email and a wrong password
// produce the identical error so account existence never leaks; storage
// failures propagate unmasked.
func (uc *LoginCustomerUseCase) Execute(ctx context.Context, input LoginCustomerInput) (*LoginCustomerOutput, error) {
	customer, err := uc.customerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrCustomerNotFound) {
			return nil, uc.invalidCredentials()
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	if !uc.passwordService.VerifyPassword(input.Password, customer.PasswordHash, customer.PasswordSalt) {
		return nil, uc.invalidCredentials()
	}

	token, err := uc.tokenService.CreateToken(customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &LoginCustomerOutput{
		Token:     token.SignedToken,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (uc *LoginCustomerUseCase) invalidCredentials() error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
