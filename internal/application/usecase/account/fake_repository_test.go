package account

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/domain/entity"
	domainerror "github.com/spa-management/backend/internal/domain/error"
)

// fakeCustomerRepository is an in-memory CustomerRepository for use case
// tests. Email lookups are case-insensitive, matching the real store.
type fakeCustomerRepository struct {
	mu          sync.Mutex
	customers   map[uuid.UUID]*entity.Customer
	createCalls int
	updateCalls int
}

func newFakeCustomerRepository() *fakeCustomerRepository {
	return &fakeCustomerRepository{
		customers: make(map[uuid.UUID]*entity.Customer),
	}
}

func (r *fakeCustomerRepository) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.createCalls++
	for _, existing := range r.customers {
		if strings.EqualFold(existing.Email, customer.Email) {
			return domainerror.ErrEmailAlreadyExists
		}
	}

	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, domainerror.ErrCustomerNotFound
	}
	found := *customer
	return &found, nil
}

func (r *fakeCustomerRepository) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.customers {
		if strings.EqualFold(customer.Email, strings.TrimSpace(email)) {
			found := *customer
			return &found, nil
		}
	}
	return nil, domainerror.ErrCustomerNotFound
}

func (r *fakeCustomerRepository) Update(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updateCalls++
	if _, ok := r.customers[customer.ID]; !ok {
		return domainerror.ErrCustomerNotFound
	}
	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeCustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return domainerror.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.customers {
		if strings.EqualFold(customer.Email, strings.TrimSpace(email)) {
			return true, nil
		}
	}
	return false, nil
}
