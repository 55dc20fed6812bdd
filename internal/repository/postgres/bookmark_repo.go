package postgres

import (
	"context"

	"cvhub-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookmarkRepo struct {
	db *pgxpool.Pool
}

func NewBookmarkRepository(db *pgxpool.Pool) domain.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) Add(ctx context.Context, userID, cvID string) error {
	query := `INSERT INTO bookmarks (id, user_id, cv_id) VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, cv_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, uuid.NewString(), userID, cvID)
	return err
}

func (r *bookmarkRepo) Remove(ctx context.Context, userID, cvID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND cv_id = $2`, userID, cvID)
	return err
}
