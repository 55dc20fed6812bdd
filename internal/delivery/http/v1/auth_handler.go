package v1

import (
	"net/http"

	"cvhub-backend/internal/delivery/http/middleware"
	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public, protected, trusted *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/signup", handler.Signup)
	trusted.POST("/create-profile", handler.CreateProfile)
	protected.GET("/me", handler.Me)
}

type SignupResponse struct {
	Success bool   `json:"success" example:"true"`
	UserID  string `json:"userId"`
}

type MeResponse struct {
	User *domain.User `json:"user"`
}

// Signup godoc
// @Summary      Register an account
// @Description  Creates the auth identity, the user row and the role profile. companyName is required for companies.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.SignupInput  true  "Signup details"
// @Success      200  {object}  SignupResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var input domain.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	userID, err := h.authUC.Signup(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
		Event:        security.EventSignup,
		SubjectType:  "email",
		SubjectValue: input.Email,
		IP:           c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
		RequestID:    c.GetString(string(domain.KeyRequestID)),
		Details:      map[string]any{"role": input.Role},
	})

	response.JSON(c, http.StatusOK, SignupResponse{Success: true, UserID: userID})
}

// CreateProfile godoc
// @Summary      Create a profile for an existing identity
// @Description  Trusted callers only: requires the service role key
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CreateProfileInput  true  "Profile details"
// @Success      200  {object}  response.SuccessBody
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     ServiceKey
// @Router       /auth/create-profile [post]
func (h *AuthHandler) CreateProfile(c *gin.Context) {
	var input domain.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.authUC.CreateProfile(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	response.Success(c)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), middleware.GetAuthContext(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, MeResponse{User: user})
}
