package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// advertisementUsecase manages the ads a company runs. Every operation is
// scoped to the caller's own company profile.
type advertisementUsecase struct {
	adRepo      domain.AdvertisementRepository
	companyRepo domain.CompanyProfileRepository
	validate    *validator.Validate
	now         func() time.Time
}

// NewAdvertisementUsecase wires advertisement operations. Dates are parsed
// and expiry is computed against the wall clock in UTC.
func NewAdvertisementUsecase(
	adRepo domain.AdvertisementRepository,
	companyRepo domain.CompanyProfileRepository,
	validate *validator.Validate,
) domain.AdvertisementUsecase {
	return &advertisementUsecase{
		adRepo:      adRepo,
		companyRepo: companyRepo,
		validate:    validate,
		now:         time.Now,
	}
}

// CreateAd stores an active ad for the caller's company. Start and end dates
// are optional ISO 8601 dates; an end before the start is rejected.
func (u *advertisementUsecase) CreateAd(ctx context.Context, auth domain.AuthContext, in domain.CreateAdInput) (*domain.Advertisement, error) {
	company, err := u.companyFor(ctx, auth, "Only companies can create ads")
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}
	startDate, err := parseAdDate(in.StartDate)
	if err != nil {
		return nil, apperror.BadRequest("Start date must be an ISO 8601 date")
	}
	endDate, err := parseAdDate(in.EndDate)
	if err != nil {
		return nil, apperror.BadRequest("End date must be an ISO 8601 date")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperror.BadRequest("End date cannot be before start date")
	}

	ad := &domain.Advertisement{
		CompanyID:   company.ID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    optionalString(in.ImageURL),
		LinkURL:     optionalString(in.LinkURL),
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      domain.AdStatusActive,
	}
	if err := u.adRepo.Create(ctx, ad); err != nil {
		return nil, apperror.Upstream("Failed to create advertisement", err)
	}
	return ad, nil
}

// ListMyAds returns the caller's ads, newest first, with their status counts.
func (u *advertisementUsecase) ListMyAds(ctx context.Context, auth domain.AuthContext) ([]domain.Advertisement, domain.AdStats, error) {
	company, err := u.companyFor(ctx, auth, "Only companies can view ads")
	if err != nil {
		return nil, domain.AdStats{}, err
	}

	ads, err := u.adRepo.ListByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, domain.AdStats{}, apperror.Upstream("Failed to fetch ads", err)
	}
	return ads, domain.ComputeAdStats(ads), nil
}

// DeleteAd removes an ad owned by the caller's company. A malformed id, a
// missing ad and a foreign ad all answer 401.
func (u *advertisementUsecase) DeleteAd(ctx context.Context, auth domain.AuthContext, id string) error {
	company, err := u.companyFor(ctx, auth, "Only companies can delete ads")
	if err != nil {
		return err
	}

	if _, err := uuid.Parse(id); err != nil {
		return apperror.Unauthorized("Unauthorized")
	}
	ad, err := u.adRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthorized("Unauthorized")
		}
		return apperror.Upstream("Failed to delete ad", err)
	}
	if err := RequireOwner(ad.CompanyID, company.ID); err != nil {
		return err
	}

	if err := u.adRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Upstream("Failed to delete ad", err)
	}
	return nil
}

// ExpireEndedAds marks every active ad whose end date has passed as expired.
func (u *advertisementUsecase) ExpireEndedAds(ctx context.Context) (int64, error) {
	return u.adRepo.ExpireEnded(ctx, u.now().UTC())
}

// companyFor authorizes a company caller and resolves its profile.
func (u *advertisementUsecase) companyFor(ctx context.Context, auth domain.AuthContext, forbidden string) (*domain.CompanyProfile, error) {
	if err := requireSession(auth); err != nil {
		return nil, err
	}
	if !auth.HasRole(domain.RoleCompany) {
		return nil, apperror.Forbidden(forbidden)
	}

	company, err := u.companyRepo.GetByUserID(ctx, auth.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Upstream("Failed to load company profile", err)
	}
	return company, nil
}

var adDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

// parseAdDate accepts RFC 3339, datetime-local and plain dates. Empty means unset.
func parseAdDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range adDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			t = t.UTC()
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
