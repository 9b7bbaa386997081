package account

import (
	"context"
	"errors"
	"testing"

	"github.com/spa-management/backend/config"
	"github.com/spa-management/backend/internal/application/adapter"
	"github.com/spa-management/backend/internal/domain/entity"
	"github.com/spa-management/backend/internal/integration/adapters"

	domainerror "github.com/spa-management/backend/internal/domain/error"
)

func newTestTokenService(t *testing.T) adapter.TokenService {
	t.Helper()
	tokenService, err := adapters.NewTokenService(config.JWTConfig{
		Key:           "test-signing-key-with-enough-entropy-for-hs512",
		Issuer:        "spa-management",
		Audience:      "spa-management-clients",
		ExpiryMinutes: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tokenService
}

func registerTestCustomer(t *testing.T, repo *fakeCustomerRepository) {
	t.Helper()
	uc := NewRegisterCustomerUseCase(repo, adapters.NewPasswordService())
	if err := uc.Execute(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("unexpected error registering customer: %v", err)
	}
}

func TestLoginCustomer_Success(t *testing.T) {
	repo := newFakeCustomerRepository()
	registerTestCustomer(t, repo)

	tokenService := newTestTokenService(t)
	uc := NewLoginCustomerUseCase(repo, adapters.NewPasswordService(), tokenService)

	output, err := uc.Execute(context.Background(), LoginCustomerInput{
		Email:    "example@mail.com",
		Password: "Password123!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Token == "" {
		t.Error("expected a non-empty token")
	}
	if output.ExpiresAt.IsZero() {
		t.Error("expected a non-zero expiry")
	}

	claims, err := tokenService.ValidateToken(output.Token)
	if err != nil {
		t.Fatalf("expected issued token to validate: %v", err)
	}
	if claims.Email != "example@mail.com" {
		t.Errorf("expected token email example@mail.com, got %s", claims.Email)
	}
}

func TestLoginCustomer_CaseInsensitiveEmail(t *testing.T) {
	repo := newFakeCustomerRepository()
	registerTestCustomer(t, repo)

	uc := NewLoginCustomerUseCase(repo, adapters.NewPasswordService(), newTestTokenService(t))

	if _, err := uc.Execute(context.Background(), LoginCustomerInput{
		Email:    "EXAMPLE@MAIL.COM",
		Password: "Password123!",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoginCustomer_IndistinguishableFailures(t *testing.T) {
	repo := newFakeCustomerRepository()
	registerTestCustomer(t, repo)

	uc := NewLoginCustomerUseCase(repo, adapters.NewPasswordService(), newTestTokenService(t))

	_, unknownEmailErr := uc.Execute(context.Background(), LoginCustomerInput{
		Email:    "nobody@mail.com",
		Password: "Password123!",
	})
	_, wrongPasswordErr := uc.Execute(context.Background(), LoginCustomerInput{
		Email:    "example@mail.com",
		Password: "WrongPassword123!",
	})

	for name, err := range map[string]error{
		"unknown email":  unknownEmailErr,
		"wrong password": wrongPasswordErr,
	} {
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}

	// The two failures must be indistinguishable to the caller.
	if unknownEmailErr.Error() != wrongPasswordErr.Error() {
		t.Errorf("expected identical error messages, got %q and %q",
			unknownEmailErr.Error(), wrongPasswordErr.Error())
	}
}

func TestLoginCustomer_StorageFailurePropagates(t *testing.T) {
	storageErr := errors.New("connection refused")
	repo := &failingRepository{
		fakeCustomerRepository: newFakeCustomerRepository(),
		findByEmailErr:         storageErr,
	}

	uc := NewLoginCustomerUseCase(repo, adapters.NewPasswordService(), newTestTokenService(t))

	_, err := uc.Execute(context.Background(), LoginCustomerInput{
		Email:    "anna@mail.com",
		Password: "Password123!",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	// A storage outage is not a credentials problem.
	if errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("expected storage failure to stay distinct from ErrInvalidCredentials, got %v", err)
	}
	if !errors.Is(err, storageErr) {
		t.Errorf("expected the storage error to be wrapped, got %v", err)
	}
}

// failingRepository simulates a storage outage on email lookups.
type failingRepository struct {
	*fakeCustomerRepository
	findByEmailErr error
}

func (r *failingRepository) FindByEmail(context.Context, string) (*entity.Customer, error) {
	return nil, r.findByEmailErr
}
