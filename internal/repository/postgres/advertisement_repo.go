package postgres

import (
	"context"
	"errors"
	"time"

	"cvhub-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type advertisementRepo struct {
	db *pgxpool.Pool
}

func NewAdvertisementRepository(db *pgxpool.Pool) domain.AdvertisementRepository {
	return &advertisementRepo{db: db}
}

const adColumns = `id, company_id, title, description, image_url, link_url, start_date, end_date,
	status, impressions, clicks, created_at, updated_at`

func scanAd(row pgx.Row) (*domain.Advertisement, error) {
	var ad domain.Advertisement
	err := row.Scan(
		&ad.ID, &ad.CompanyID, &ad.Title, &ad.Description, &ad.ImageURL, &ad.LinkURL,
		&ad.StartDate, &ad.EndDate, &ad.Status, &ad.Impressions, &ad.Clicks,
		&ad.CreatedAt, &ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepo) Create(ctx context.Context, ad *domain.Advertisement) error {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	if ad.Status == "" {
		ad.Status = domain.AdStatusActive
	}

	query := `INSERT INTO advertisements (id, company_id, title, description, image_url, link_url, start_date, end_date, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		ad.ID, ad.CompanyID, ad.Title, ad.Description, ad.ImageURL, ad.LinkURL,
		ad.StartDate, ad.EndDate, ad.Status,
	).Scan(&ad.CreatedAt, &ad.UpdatedAt)
}

func (r *advertisementRepo) GetByID(ctx context.Context, id string) (*domain.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements WHERE id = $1`
	ad, err := scanAd(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ad, nil
}

func (r *advertisementRepo) ListByCompanyID(ctx context.Context, companyID string) ([]domain.Advertisement, error) {
	query := `SELECT ` + adColumns + ` FROM advertisements WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ads := []domain.Advertisement{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, *ad)
	}
	return ads, rows.Err()
}

func (r *advertisementRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExpireEnded flips active ads whose end_date is before now to expired and
// returns how many changed.
func (r *advertisementRepo) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE advertisements
	          SET status = $1, updated_at = now()
	          WHERE status = $2 AND end_date IS NOT NULL AND end_date < $3`
	result, err := r.db.Exec(ctx, query, domain.AdStatusExpired, domain.AdStatusActive, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
