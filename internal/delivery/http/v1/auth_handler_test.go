package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("Should return the new user id", func(t *testing.T) {
		h := newHarness()
		input := domain.SignupInput{
			Email:       "hr@acme.test",
			Password:    "secret123",
			FullName:    "Budi",
			CompanyName: "Acme",
			Role:        domain.RoleCompany,
		}
		h.auth.On("Signup", mock.Anything, input).Return(companyUserID, nil).Once()

		w := h.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
			"email":       "hr@acme.test",
			"password":    "secret123",
			"fullName":    "Budi",
			"companyName": "Acme",
			"role":        "company",
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, companyUserID, body["userId"])
	})

	t.Run("Should pass validation failures through as 400", func(t *testing.T) {
		h := newHarness()
		h.auth.On("Signup", mock.Anything, mock.Anything).
			Return("", apperror.BadRequest("Company name is required")).Once()

		w := h.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
			"email": "hr@acme.test", "password": "secret123", "fullName": "Budi", "role": "company",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Company name is required", decodeBody(t, w)["error"])
	})
}

func TestAuthHandler_CreateProfile(t *testing.T) {
	body := `{"userId":"` + applicantUserID + `","email":"ana@example.com","role":"applicant","fullName":"Ana"}`

	t.Run("Should refuse callers without the service key", func(t *testing.T) {
		h := newHarness()

		w := h.do(t, http.MethodPost, "/api/auth/create-profile", applicantUserID, body)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		h.auth.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
	})

	t.Run("Should accept the service key in the apikey header", func(t *testing.T) {
		h := newHarness()
		h.auth.On("CreateProfile", mock.Anything, domain.CreateProfileInput{
			UserID: applicantUserID, Email: "ana@example.com", Role: "applicant", FullName: "Ana",
		}).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/create-profile", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("apikey", testServiceKey)
		w := httptest.NewRecorder()
		h.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])
		h.auth.AssertExpectations(t)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("Should return the stored user", func(t *testing.T) {
		h := newHarness()
		h.auth.On("GetCurrentUser", mock.Anything, applicantUserID).
			Return(&domain.User{ID: applicantUserID, Email: "ana@example.com", Role: domain.RoleApplicant}, nil).Once()

		w := h.do(t, http.MethodGet, "/api/auth/me", applicantUserID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		user := decodeBody(t, w)["user"].(map[string]any)
		assert.Equal(t, "applicant", user["role"])
	})
}
