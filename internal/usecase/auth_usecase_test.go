package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cvhub-backend/internal/domain"
	"cvhub-backend/internal/usecase"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail a company signup without a company name before any side effect", func(t *testing.T) {
		users, accounts, identity := new(MockUserRepo), new(MockAccountRepo), new(MockIdentityProvider)
		uc := usecase.NewAuthUsecase(users, accounts, identity, validation.New())

		_, err := uc.Signup(ctx, domain.SignupInput{
			Email: "hr@acme.example", Password: "secret1", FullName: "Acme HR", Role: domain.RoleCompany,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
		assert.Contains(t, err.Error(), "Company name is required")
		identity.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		accounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should create the auth user then the account", func(t *testing.T) {
		users, accounts, identity := new(MockUserRepo), new(MockAccountRepo), new(MockIdentityProvider)
		identity.On("CreateUser", ctx, "ana@example.com", "secret1", mock.Anything).Return(ownerID, nil)
		accounts.On("CreateAccount", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == ownerID && u.Email == "ana@example.com" && u.Role == domain.RoleApplicant
		}), "").Return(nil)
		uc := usecase.NewAuthUsecase(users, accounts, identity, validation.New())

		id, err := uc.Signup(ctx, domain.SignupInput{
			Email: " Ana@Example.com ", Password: "secret1", FullName: "Ana Lopez",
			CompanyName: "ignored", Role: domain.RoleApplicant,
		})
		require.NoError(t, err)
		assert.Equal(t, ownerID, id)
		accounts.AssertExpectations(t)
	})

	t.Run("Should delete the auth user when the account write fails", func(t *testing.T) {
		users, accounts, identity := new(MockUserRepo), new(MockAccountRepo), new(MockIdentityProvider)
		identity.On("CreateUser", ctx, "hr@acme.example", "secret1", mock.Anything).Return(ownerID, nil)
		identity.On("DeleteUser", mock.Anything, ownerID).Return(nil)
		accounts.On("CreateAccount", ctx, mock.Anything, "Acme").Return(errors.New("tx aborted"))
		uc := usecase.NewAuthUsecase(users, accounts, identity, validation.New())

		_, err := uc.Signup(ctx, domain.SignupInput{
			Email: "hr@acme.example", Password: "secret1", FullName: "Acme HR",
			CompanyName: "Acme", Role: domain.RoleCompany,
		})
		require.Error(t, err)
		assert.Equal(t, "Failed to sign up", err.Error())
		identity.AssertExpectations(t)
	})

	t.Run("Should pass identity provider rejections through", func(t *testing.T) {
		users, accounts, identity := new(MockUserRepo), new(MockAccountRepo), new(MockIdentityProvider)
		identity.On("CreateUser", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return("", apperror.BadRequest("User already registered"))
		uc := usecase.NewAuthUsecase(users, accounts, identity, validation.New())

		_, err := uc.Signup(ctx, domain.SignupInput{
			Email: "ana@example.com", Password: "secret1", FullName: "Ana Lopez", Role: domain.RoleApplicant,
		})
		assert.Equal(t, "User already registered", err.Error())
		accounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject the admin role", func(t *testing.T) {
		users, accounts, identity := new(MockUserRepo), new(MockAccountRepo), new(MockIdentityProvider)
		uc := usecase.NewAuthUsecase(users, accounts, identity, validation.New())

		_, err := uc.Signup(ctx, domain.SignupInput{
			Email: "x@example.com", Password: "secret1", FullName: "X", Role: domain.RoleAdmin,
		})
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	})
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should surface a duplicate as conflict", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		accounts.On("CreateAccount", ctx, mock.Anything, "").Return(apperror.Conflict("User with this email already exists"))
		uc := usecase.NewAuthUsecase(new(MockUserRepo), accounts, new(MockIdentityProvider), validation.New())

		err := uc.CreateProfile(ctx, domain.CreateProfileInput{
			UserID: ownerID, Email: "ana@example.com", Role: domain.RoleApplicant, FullName: "Ana",
		})
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
	})

	t.Run("Should require a uuid user id", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(new(MockUserRepo), accounts, new(MockIdentityProvider), validation.New())

		err := uc.CreateProfile(ctx, domain.CreateProfileInput{UserID: "abc", Email: "a@b.co", Role: domain.RoleApplicant})
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
		accounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	users.On("GetByID", ctx, otherID).Return(nil, domain.ErrNotFound)
	uc := usecase.NewAuthUsecase(users, new(MockAccountRepo), new(MockIdentityProvider), validation.New())

	_, err := uc.GetCurrentUser(ctx, otherID)
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
}
