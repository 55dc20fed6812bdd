package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/auth"
	"cvhub-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie the frontend stores the Supabase access token in.
const SessionCookieName = "sb-access-token"

var errNoToken = errors.New("no session token")

// UserLookup resolves the stored user record behind a token subject.
type UserLookup interface {
	GetCurrentUser(ctx context.Context, id string) (*domain.User, error)
}

// SessionResolver verifies Supabase access tokens and loads the caller's role
// from the users table. The role claim inside the token is never trusted.
type SessionResolver struct {
	jwks      *auth.Provider
	jwtSecret string
	users     UserLookup
}

func NewSessionResolver(jwks *auth.Provider, jwtSecret string, users UserLookup) *SessionResolver {
	return &SessionResolver{jwks: jwks, jwtSecret: jwtSecret, users: users}
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

func (r *SessionResolver) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if r.jwtSecret == "" {
			return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
		}
		return []byte(r.jwtSecret), nil
	case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
		if r.jwks == nil {
			return nil, fmt.Errorf("asymmetric token received but no JWKS provider is configured")
		}
		return r.jwks.KeyFunc(token)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

// Resolve returns the caller identity for the request, or errNoToken when
// the request carries no session at all. A user store failure comes back as
// a 5xx *apperror.AppError; every other error means the session is invalid.
func (r *SessionResolver) Resolve(c *gin.Context) (domain.AuthContext, error) {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return domain.AuthContext{}, errNoToken
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, r.keyFunc,
		jwt.WithValidMethods([]string{"HS256", "RS256", "ES256"}),
	)
	if err != nil || !token.Valid {
		return domain.AuthContext{}, fmt.Errorf("invalid token: %w", err)
	}
	if exp, err := claims.GetExpirationTime(); err != nil || exp == nil {
		return domain.AuthContext{}, errors.New("token has no expiry")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.AuthContext{}, errors.New("token has no subject")
	}
	email, _ := claims["email"].(string)

	user, err := r.users.GetCurrentUser(c.Request.Context(), sub)
	if err != nil {
		if apperror.CodeOf(err) == http.StatusNotFound || errors.Is(err, domain.ErrNotFound) {
			return domain.AuthContext{}, fmt.Errorf("load user: %w", err)
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code >= http.StatusInternalServerError {
			return domain.AuthContext{}, appErr
		}
		return domain.AuthContext{}, apperror.Upstream("Failed to load user", err)
	}

	return domain.AuthContext{UserID: user.ID, Email: email, Role: user.Role}, nil
}

func setAuthContext(c *gin.Context, ac domain.AuthContext) {
	c.Set(string(domain.KeyAuthContext), ac)
	c.Set(string(domain.KeyUserID), ac.UserID)
	c.Set(string(domain.KeyUserEmail), ac.Email)
	c.Set(string(domain.KeyUserRole), ac.Role)
}

// GetAuthContext returns the identity stored by AuthMiddleware or
// OptionalAuthMiddleware, or the anonymous zero value.
func GetAuthContext(c *gin.Context) domain.AuthContext {
	if v, ok := c.Get(string(domain.KeyAuthContext)); ok {
		if ac, ok := v.(domain.AuthContext); ok {
			return ac
		}
	}
	return domain.AuthContext{}
}

// AuthMiddleware rejects requests without a valid session.
func AuthMiddleware(resolver *SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, err := resolver.Resolve(c)
		if appErr, ok := storeFailure(err); ok {
			c.Error(appErr)
			c.Abort()
			return
		}
		if err != nil {
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:     security.EventUnauthenticated,
				IP:        c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
				RequestID: requestIDFrom(c),
				Details:   map[string]any{"endpoint": c.FullPath(), "reason": err.Error()},
			})
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		setAuthContext(c, ac)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when a valid session is present
// and otherwise continues anonymously. A user store failure still aborts with 500.
func OptionalAuthMiddleware(resolver *SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, err := resolver.Resolve(c)
		if appErr, ok := storeFailure(err); ok {
			c.Error(appErr)
			c.Abort()
			return
		}
		if err == nil {
			setAuthContext(c, ac)
		}
		c.Next()
	}
}

// storeFailure reports whether err is the user store failing rather than a bad session.
func storeFailure(err error) (*apperror.AppError, bool) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code >= http.StatusInternalServerError {
		return appErr, true
	}
	return nil, false
}

// ServiceKeyMiddleware admits only callers presenting the service role key,
// either as a Bearer token or in the apikey header.
func ServiceKeyMiddleware(isServiceKey func(string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("apikey")
		if bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			key = strings.TrimSpace(bearer)
		}

		if key == "" || !isServiceKey(key) {
			security.DefaultLogger().LogAccessDenied(
				c.Request.Context(),
				security.EventTrustedCallDenied,
				"",
				c.ClientIP(),
				requestIDFrom(c),
				c.FullPath(),
			)
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}
