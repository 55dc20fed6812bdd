package usecase

import (
	"context"
	"errors"
	"strings"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/logger"
	"cvhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	accountRepo domain.AccountRepository
	identity    domain.IdentityProvider
	validate    *validator.Validate
}

// NewAuthUsecase wires signup and profile creation against the hosted
// identity provider and the local user tables.
func NewAuthUsecase(
	userRepo domain.UserRepository,
	accountRepo domain.AccountRepository,
	identity domain.IdentityProvider,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		identity:    identity,
		validate:    validate,
	}
}

// Signup creates the hosted auth user, then the local user row and role
// profile. If the local write fails the auth user is deleted again so the
// email can be reused.
func (u *authUsecase) Signup(ctx context.Context, in domain.SignupInput) (string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	in.CompanyName = strings.TrimSpace(in.CompanyName)

	if err := u.validate.Struct(in); err != nil {
		return "", apperror.BadRequest(validation.Message(err))
	}

	userID, err := u.identity.CreateUser(ctx, in.Email, in.Password, map[string]any{
		"full_name": in.FullName,
		"role":      in.Role,
	})
	if err != nil {
		return "", err
	}

	user := &domain.User{ID: userID, Email: in.Email, FullName: in.FullName, Role: in.Role}
	if err := u.accountRepo.CreateAccount(ctx, user, companyNameFor(in.Role, in.CompanyName)); err != nil {
		if delErr := u.identity.DeleteUser(context.WithoutCancel(ctx), userID); delErr != nil {
			logger.Log.Error("signup rollback failed", "user_id", userID, "error", delErr)
		}
		return "", accountError(err, "Failed to sign up")
	}

	return userID, nil
}

// CreateProfile writes the local records for an auth user created elsewhere.
func (u *authUsecase) CreateProfile(ctx context.Context, in domain.CreateProfileInput) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	in.CompanyName = strings.TrimSpace(in.CompanyName)

	if err := u.validate.Struct(in); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}

	user := &domain.User{ID: in.UserID, Email: in.Email, FullName: in.FullName, Role: in.Role}
	if err := u.accountRepo.CreateAccount(ctx, user, companyNameFor(in.Role, in.CompanyName)); err != nil {
		return accountError(err, "Failed to create profile")
	}
	return nil
}

// GetCurrentUser loads the local user row. A missing row is NotFound; any
// other store failure is Upstream.
func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Upstream("Failed to load user", err)
	}
	return user, nil
}

func companyNameFor(role, name string) string {
	if role == domain.RoleCompany {
		return name
	}
	return ""
}

func accountError(err error, message string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Upstream(message, err)
}
