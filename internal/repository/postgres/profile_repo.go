package postgres

import (
	"context"
	"errors"

	"cvhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicantProfileRepo struct {
	db *pgxpool.Pool
}

func NewApplicantProfileRepository(db *pgxpool.Pool) domain.ApplicantProfileRepository {
	return &applicantProfileRepo{db: db}
}

// ListByUserIDs returns the profiles of the given users. Users without a
// profile are simply absent from the result.
func (r *applicantProfileRepo) ListByUserIDs(ctx context.Context, userIDs []string) ([]domain.ApplicantProfile, error) {
	if len(userIDs) == 0 {
		return []domain.ApplicantProfile{}, nil
	}

	query := `
		SELECT id, user_id, COALESCE(location, ''), COALESCE(years_experience, 0), created_at, updated_at
		FROM applicant_profiles
		WHERE user_id = ANY($1::uuid[])`
	rows, err := r.db.Query(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.ApplicantProfile{}
	for rows.Next() {
		var p domain.ApplicantProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Location, &p.YearsExperience, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

func (r *companyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	query := `SELECT id, user_id, company_name, created_at, updated_at FROM company_profiles WHERE user_id = $1`
	var p domain.CompanyProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.CompanyName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
