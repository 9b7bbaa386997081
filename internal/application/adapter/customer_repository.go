// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
// Email lookups are case-insensitive. Create and Update commit their changes;
// the storage-level unique constraint on email is the final arbiter of
// registration races.
type CustomerRepository interface {
	// Create creates a new customer in the database.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail retrieves a customer by their email address, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Update updates an existing customer in the database.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks if a customer with the given email exists, case-insensitively.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
