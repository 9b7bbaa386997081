package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/application/adapter"
	"github.com/spa-management/backend/internal/domain/entity"
	domainerror "github.com/spa-management/backend/internal/domain/error"
)

// UpdateProfileInput carries optional replacement values for the customer's
// profile fields. Nil fields are left untouched.
type UpdateProfileInput struct {
	ID          uuid.UUID
	FirstName   *string
	LastName    *string
	Gender      *string
	DateOfBirth *time.Time
	Preferences *string
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(customerRepo adapter.CustomerRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		customerRepo: customerRepo,
	}
}

// Execute applies the profile update and persists only when at least one
// field actually changed.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) error {
	customer, err := uc.customerRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCustomerNotFound) {
			return domainerror.NewAccountError(
				domainerror.ErrCodeCustomerNotFound,
				"customer not found",
				domainerror.ErrCustomerNotFound,
			)
		}
		return fmt.Errorf("failed to find customer: %w", err)
	}

	updated, err := customer.UpdateBasicInformation(entity.UpdateBasicInformationInput{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		Preferences: input.Preferences,
	})
	if err != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidField,
			"invalid profile data",
			err,
		)
	}

	if !updated {
		return nil
	}

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}
