package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/application/adapter"
	domainerror "github.com/spa-management/backend/internal/domain/error"
)

// ProfileOutput is the read-only projection of a customer account. Password
// material and internal notes are deliberately absent.
type ProfileOutput struct {
	ID                   uuid.UUID
	Email                string
	PhoneNumber          string
	FirstName            string
	LastName             string
	Gender               string
	DateOfBirth          time.Time
	Preferences          *string
	EmailConfirmed       bool
	PhoneNumberConfirmed bool
	TwoFactorEnabled     bool
}

// GetProfileUseCase handles profile retrieval.
type GetProfileUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(customerRepo adapter.CustomerRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		customerRepo: customerRepo,
	}
}

// Execute retrieves the customer's profile projection.
func (uc *GetProfileUseCase) Execute(ctx context.Context, id uuid.UUID) (*ProfileOutput, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCustomerNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeCustomerNotFound,
				"customer not found",
				domainerror.ErrCustomerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &ProfileOutput{
		ID:                   customer.ID,
		Email:                customer.Email,
		PhoneNumber:          customer.PhoneNumber,
		FirstName:            customer.FirstName,
		LastName:             customer.LastName,
		Gender:               customer.Gender,
		DateOfBirth:          customer.DateOfBirth,
		Preferences:          customer.Preferences,
		EmailConfirmed:       customer.EmailConfirmed,
		PhoneNumberConfirmed: customer.PhoneNumberConfirmed,
		TwoFactorEnabled:     customer.TwoFactorEnabled,
	}, nil
}
