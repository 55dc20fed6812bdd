package postgres

import (
	"context"
	"fmt"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type accountRepo struct {
	db *pgxpool.Pool
}

// NewAccountRepository stores a user row and its role profile atomically.
func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) CreateAccount(ctx context.Context, user *domain.User, companyName string) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, full_name, role) VALUES ($1, $2, NULLIF($3, ''), $4)`,
			user.ID, user.Email, user.FullName, user.Role,
		)
		if err != nil {
			return err
		}

		switch user.Role {
		case domain.RoleApplicant:
			_, err = tx.Exec(ctx, `INSERT INTO applicant_profiles (user_id) VALUES ($1)`, user.ID)
		case domain.RoleCompany:
			_, err = tx.Exec(ctx,
				`INSERT INTO company_profiles (user_id, company_name) VALUES ($1, $2)`,
				user.ID, companyName,
			)
		default:
			err = fmt.Errorf("no profile table for role %q", user.Role)
		}
		return err
	})
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return apperror.Conflict("User with this email already exists")
		}
		return err
	}
	return nil
}
