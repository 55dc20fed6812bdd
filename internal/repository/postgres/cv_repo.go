package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepo{db: db}
}

const cvColumns = `id, user_id, title, status, content, created_at, updated_at`

// errUndecodableContent marks a row whose content column is not a CV document.
var errUndecodableContent = errors.New("undecodable cv content")

func scanCV(row pgx.Row) (*domain.CV, error) {
	var cv domain.CV
	var content []byte
	if err := row.Scan(&cv.ID, &cv.UserID, &cv.Title, &cv.Status, &content, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(content, &cv.Content); err != nil {
		return nil, fmt.Errorf("decode cv %s: %w: %v", cv.ID, errUndecodableContent, err)
	}
	return &cv, nil
}

// cvRows is the part of pgx.Rows that collectCVs reads.
type cvRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// collectCVs scans every row. With skipUndecodable set, rows whose content
// cannot be decoded are logged and left out instead of failing the listing.
func collectCVs(rows cvRows, skipUndecodable bool) ([]domain.CV, error) {
	defer rows.Close()
	cvs := []domain.CV{}
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			if skipUndecodable && errors.Is(err, errUndecodableContent) {
				logger.Log.Warn("Skipping CV with unreadable content", "error", err)
				continue
			}
			return nil, err
		}
		cvs = append(cvs, *cv)
	}
	return cvs, rows.Err()
}

// Create inserts the CV and its four sections in one transaction. An empty
// cv.ID is assigned a new UUID.
func (r *cvRepo) Create(ctx context.Context, cv *domain.CV) error {
	if cv.ID == "" {
		cv.ID = uuid.NewString()
	}
	content, err := json.Marshal(cv.Content)
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO cvs (id, user_id, title, status, content)
		          VALUES ($1, $2, $3, $4, $5::jsonb)
		          RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, query, cv.ID, cv.UserID, cv.Title, cv.Status, string(content)).
			Scan(&cv.CreatedAt, &cv.UpdatedAt)
		if err != nil {
			return err
		}

		for _, section := range cv.Content.Sections() {
			sectionContent, err := json.Marshal(section.Content)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO cv_sections (cv_id, section_type, content, order_index) VALUES ($1, $2, $3::jsonb, $4)`,
				cv.ID, section.SectionType, string(sectionContent), section.OrderIndex,
			)
			if err != nil {
				return fmt.Errorf("insert %s section: %w", section.SectionType, err)
			}
		}
		return nil
	})
}

func (r *cvRepo) GetByID(ctx context.Context, id string) (*domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE id = $1`
	cv, err := scanCV(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cv, nil
}

func (r *cvRepo) ListByUserID(ctx context.Context, userID string) ([]domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectCVs(rows, false)
}

// ListPublished returns every published CV, newest first. Rows with unreadable
// content are skipped so one bad document cannot take the directory down.
func (r *cvRepo) ListPublished(ctx context.Context) ([]domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, domain.CVStatusPublished)
	if err != nil {
		return nil, err
	}
	return collectCVs(rows, true)
}

func (r *cvRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
