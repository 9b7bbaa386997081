// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spa-management/backend/internal/application/adapter"
	"github.com/spa-management/backend/internal/domain/entity"
	domainerror "github.com/spa-management/backend/internal/domain/error"
	"github.com/spa-management/backend/internal/integration/persistence/model"
)

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database. A unique-constraint
// violation on the normalized email surfaces as ErrEmailAlreadyExists so the
// registration race resolves to a duplicate-account error.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.FromEntity(customer)
	result := r.db.WithContext(ctx).Create(customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrEmailAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a customer by their ID.
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindByEmail retrieves a customer by their email address, case-insensitively.
func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("normalized_email = ?", model.NormalizeEmail(email)).
		First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// Update updates an existing customer in the database.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.FromEntity(customer)
	result := r.db.WithContext(ctx).Save(customerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a customer from the database.
func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByEmail checks if a customer with the given email exists, case-insensitively.
func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("normalized_email = ?", model.NormalizeEmail(email)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
