package domain

import (
	"context"
	"time"
)

const (
	RoleApplicant = "applicant"
	RoleCompany   = "company"
	RoleAdmin     = "admin"
)

type User struct {
	ID        string    `json:"id"` // Supabase UUID
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthContext is the caller identity resolved once per request by the auth middleware.
// The zero value is an anonymous caller.
type AuthContext struct {
	UserID string
	Email  string
	Role   string
}

func (a AuthContext) IsAuthenticated() bool {
	return a.UserID != ""
}

func (a AuthContext) HasRole(role string) bool {
	return a.IsAuthenticated() && a.Role == role
}

type SignupInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"fullName" validate:"required,max=120,valid_name,no_emoji"`
	CompanyName string `json:"companyName" validate:"required_if=Role company,max=200,no_emoji"`
	Role        string `json:"role" validate:"required,valid_role"`
}

type CreateProfileInput struct {
	UserID      string `json:"userId" validate:"required,uuid"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required,valid_role"`
	FullName    string `json:"fullName" validate:"max=120,no_emoji"`
	CompanyName string `json:"companyName" validate:"required_if=Role company,max=200,no_emoji"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	ListByIDs(ctx context.Context, ids []string) ([]User, error)
}

// AccountRepository writes a user row together with its role profile.
type AccountRepository interface {
	CreateAccount(ctx context.Context, user *User, companyName string) error
}

// IdentityProvider is the hosted auth service that owns credentials.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password string, metadata map[string]any) (string, error)
	DeleteUser(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Signup(ctx context.Context, in SignupInput) (string, error)
	CreateProfile(ctx context.Context, in CreateProfileInput) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
