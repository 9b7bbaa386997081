// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spa-management/backend/internal/application/usecase/account"
	domainerror "github.com/spa-management/backend/internal/domain/error"
	"github.com/spa-management/backend/internal/integration/entrypoint/dto"
	"github.com/spa-management/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles the customer account endpoints.
type AccountController struct {
	registerUseCase      *account.RegisterCustomerUseCase
	loginUseCase         *account.LoginCustomerUseCase
	getProfileUseCase    *account.GetProfileUseCase
	updateProfileUseCase *account.UpdateProfileUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	registerUseCase *account.RegisterCustomerUseCase,
	loginUseCase *account.LoginCustomerUseCase,
	getProfileUseCase *account.GetProfileUseCase,
	updateProfileUseCase *account.UpdateProfileUseCase,
) *AccountController {
	return &AccountController{
		registerUseCase:      registerUseCase,
		loginUseCase:         loginUseCase,
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// Register handles POST /account/register requests.
func (c *AccountController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	dateOfBirth, err := time.Parse(dto.DateOnlyFormat, req.DateOfBirth)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date of birth, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidField),
		})
		return
	}

	input := account.RegisterCustomerInput{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		DateOfBirth: dateOfBirth,
		Preferences: req.Preferences,
	}

	if err := c.registerUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "Account created",
	})
}

// Login handles POST /account/login requests.
func (c *AccountController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := account.LoginCustomerInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// GetProfile handles GET /account requests for the authenticated customer.
func (c *AccountController) GetProfile(ctx *gin.Context) {
	customerID, ok := middleware.GetCustomerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	profile, err := c.getProfileUseCase.Execute(ctx.Request.Context(), customerID)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// UpdateProfile handles PATCH /account requests for the authenticated customer.
func (c *AccountController) UpdateProfile(ctx *gin.Context) {
	customerID, ok := middleware.GetCustomerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := account.UpdateProfileInput{
		ID:          customerID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		Preferences: req.Preferences,
	}

	if req.DateOfBirth != nil {
		dateOfBirth, err := time.Parse(dto.DateOnlyFormat, *req.DateOfBirth)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date of birth, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidField),
			})
			return
		}
		input.DateOfBirth = &dateOfBirth
	}

	if err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError translates domain errors into HTTP responses. Validation
// errors are safe to surface verbatim; storage errors stay opaque.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accountErr *domainerror.AccountError
	code := ""
	if errors.As(err, &accountErr) {
		code = string(accountErr.Code)
	}

	switch {
	case errors.Is(err, domainerror.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid email or password",
			Code:  code,
		})
	case errors.Is(err, domainerror.ErrEmailAlreadyExists):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "An account with this email already exists",
			Code:  code,
		})
	case errors.Is(err, domainerror.ErrCustomerNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Customer not found",
			Code:  code,
		})
	case domainerror.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  code,
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}
