package domain

import (
	"context"
	"time"
)

const (
	AdStatusActive  = "active"
	AdStatusExpired = "expired"
)

type Advertisement struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"image_url"`
	LinkURL     *string    `json:"link_url"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `json:"status"`
	Impressions int64      `json:"impressions"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AdStats aggregates a company's advertisements.
type AdStats struct {
	TotalAds         int   `json:"totalAds"`
	ActiveAds        int   `json:"activeAds"`
	TotalImpressions int64 `json:"totalImpressions"`
	TotalClicks      int64 `json:"totalClicks"`
}

func ComputeAdStats(ads []Advertisement) AdStats {
	stats := AdStats{TotalAds: len(ads)}
	for _, ad := range ads {
		if ad.Status == AdStatusActive {
			stats.ActiveAds++
		}
		stats.TotalImpressions += ad.Impressions
		stats.TotalClicks += ad.Clicks
	}
	return stats
}

type CreateAdInput struct {
	Title       string `json:"title" validate:"required,max=200,no_emoji"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	LinkURL     string `json:"linkUrl" validate:"omitempty,url"`
	// ISO 8601 date or date-time; empty means open-ended.
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *Advertisement) error
	GetByID(ctx context.Context, id string) (*Advertisement, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Advertisement, error)
	Delete(ctx context.Context, id string) error
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
}

type AdvertisementUsecase interface {
	CreateAd(ctx context.Context, auth AuthContext, in CreateAdInput) (*Advertisement, error)
	ListMyAds(ctx context.Context, auth AuthContext) ([]Advertisement, AdStats, error)
	DeleteAd(ctx context.Context, auth AuthContext, id string) error
	ExpireEndedAds(ctx context.Context) (int64, error)
}
