package domain

import (
	"context"
	"time"
)

// ApplicantProfile holds the directory attributes of a job seeker.
// Location and YearsExperience are nullable in storage and default to "" and 0.
type ApplicantProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Location        string    `json:"location"`
	YearsExperience int       `json:"years_experience"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CompanyProfile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ApplicantProfileRepository interface {
	ListByUserIDs(ctx context.Context, userIDs []string) ([]ApplicantProfile, error)
}

type CompanyProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
}
