package usecase

import (
	"context"
	"errors"
	"strings"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/logger"
	"cvhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultCVTitle = "Untitled CV"

// cvUsecase owns CV storage rules and keeps the directory cache in step
// with published CVs.
type cvUsecase struct {
	cvRepo   domain.CVRepository
	cache    domain.SearchCache
	validate *validator.Validate
}

// NewCVUsecase wires CV operations. cache may be nil, in which case create
// and delete skip directory invalidation.
func NewCVUsecase(cvRepo domain.CVRepository, cache domain.SearchCache, validate *validator.Validate) domain.CVUsecase {
	return &cvUsecase{cvRepo: cvRepo, cache: cache, validate: validate}
}

// CreateCV stores the content as a published CV owned by the caller. A blank
// title becomes "Untitled CV". The directory cache is invalidated on success.
func (u *cvUsecase) CreateCV(ctx context.Context, auth domain.AuthContext, content domain.CVContent) (*domain.CV, error) {
	if err := requireSession(auth); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(content); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	title := strings.TrimSpace(content.Title)
	if title == "" {
		title = defaultCVTitle
	}

	cv := &domain.CV{
		UserID:  auth.UserID,
		Title:   title,
		Status:  domain.CVStatusPublished,
		Content: content,
	}
	if err := u.cvRepo.Create(ctx, cv); err != nil {
		return nil, apperror.Upstream("Failed to create CV", err)
	}

	u.invalidateDirectory(ctx)
	return cv, nil
}

// ListMyCVs returns the caller's CVs, most recently updated first.
func (u *cvUsecase) ListMyCVs(ctx context.Context, auth domain.AuthContext) ([]domain.CV, error) {
	if err := requireSession(auth); err != nil {
		return nil, err
	}
	cvs, err := u.cvRepo.ListByUserID(ctx, auth.UserID)
	if err != nil {
		return nil, apperror.Upstream("Failed to fetch CVs", err)
	}
	return cvs, nil
}

// DeleteCV removes a CV owned by the caller. A missing CV and a foreign CV
// are indistinguishable to the caller. The directory cache is invalidated
// on success.
func (u *cvUsecase) DeleteCV(ctx context.Context, auth domain.AuthContext, id string) error {
	if err := requireSession(auth); err != nil {
		return err
	}

	cv, err := u.lookup(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthorized("Unauthorized")
		}
		return apperror.Upstream("Failed to delete CV", err)
	}
	if err := RequireOwner(cv.UserID, auth.UserID); err != nil {
		return err
	}

	if err := u.cvRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Upstream("Failed to delete CV", err)
	}

	u.invalidateDirectory(ctx)
	return nil
}

// GetPublishedCV returns a CV for the public viewer. Drafts and unknown ids
// are both 404.
func (u *cvUsecase) GetPublishedCV(ctx context.Context, id string) (*domain.CV, error) {
	cv, err := u.lookup(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("CV not found")
		}
		return nil, apperror.Upstream("Failed to fetch CV", err)
	}
	if !cv.IsPublished() {
		return nil, apperror.NotFound("CV not found")
	}
	return cv, nil
}

// GetExportableCV returns a CV the caller may download: their own, or any
// published one.
func (u *cvUsecase) GetExportableCV(ctx context.Context, auth domain.AuthContext, id string) (*domain.CV, error) {
	cv, err := u.lookup(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("CV not found")
		}
		return nil, apperror.Upstream("Failed to generate PDF", err)
	}
	if cv.IsPublished() {
		return cv, nil
	}
	if err := RequireOwner(cv.UserID, auth.UserID); err != nil {
		return nil, err
	}
	return cv, nil
}

// lookup rejects malformed ids before they reach the uuid column.
func (u *cvUsecase) lookup(ctx context.Context, id string) (*domain.CV, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	return u.cvRepo.GetByID(ctx, id)
}

// invalidateDirectory drops cached searches. Failure is logged, not returned.
func (u *cvUsecase) invalidateDirectory(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, directoryCachePattern); err != nil {
		logger.Log.Warn("directory cache invalidation failed", "error", err)
	}
}
