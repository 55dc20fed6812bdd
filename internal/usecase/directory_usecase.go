package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"cvhub-backend/internal/directory"
	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	directoryCachePrefix  = "directory:search:"
	directoryCachePattern = directoryCachePrefix + "*"
)

type directoryUsecase struct {
	cvRepo        domain.CVRepository
	applicantRepo domain.ApplicantProfileRepository
	userRepo      domain.UserRepository
	cache         domain.SearchCache
	cacheTTL      time.Duration
}

// NewDirectoryUsecase wires the directory search. A nil cache or a zero ttl
// disables result caching.
func NewDirectoryUsecase(
	cvRepo domain.CVRepository,
	applicantRepo domain.ApplicantProfileRepository,
	userRepo domain.UserRepository,
	cache domain.SearchCache,
	cacheTTL time.Duration,
) domain.DirectoryUsecase {
	return &directoryUsecase{
		cvRepo:        cvRepo,
		applicantRepo: applicantRepo,
		userRepo:      userRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// Search returns published CVs matching criteria, served from the cache when
// enabled. Cache errors are logged and fall through to the store. A search
// racing a CV create or delete may cache a stale result for one TTL.
func (u *directoryUsecase) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.DirectoryResult, error) {
	key := DirectorySearchCacheKey(criteria)
	if u.cachingEnabled() {
		var cached []domain.DirectoryResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Log.Warn("directory cache read failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	results, err := u.search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if u.cachingEnabled() {
		if err := u.cache.SetJSON(ctx, key, results, u.cacheTTL); err != nil {
			logger.Log.Warn("directory cache write failed", "error", err)
		}
	}
	return results, nil
}

// Export runs the same search for a company and renders it as a workbook.
func (u *directoryUsecase) Export(ctx context.Context, auth domain.AuthContext, criteria domain.SearchCriteria) ([]byte, error) {
	if err := requireSession(auth); err != nil {
		return nil, err
	}
	if !auth.HasRole(domain.RoleCompany) {
		return nil, apperror.Forbidden("Only companies can export the directory")
	}

	results, err := u.search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	data, err := directory.WriteWorkbook(results)
	if err != nil {
		return nil, apperror.Upstream("Failed to export applicants", err)
	}
	return data, nil
}

// search fetches published CVs, then profiles and users for their authors
// concurrently. Any fetch failure aborts the whole search.
func (u *directoryUsecase) search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.DirectoryResult, error) {
	cvs, err := u.cvRepo.ListPublished(ctx)
	if err != nil {
		return nil, apperror.Upstream("Failed to search applicants", err)
	}
	if len(cvs) == 0 {
		return []domain.DirectoryResult{}, nil
	}

	authorIDs := directory.AuthorIDs(cvs)

	var (
		profiles []domain.ApplicantProfile
		users    []domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = u.applicantRepo.ListByUserIDs(gctx, authorIDs)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = u.userRepo.ListByIDs(gctx, authorIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Upstream("Failed to search applicants", err)
	}

	return directory.Search(criteria, cvs, profiles, users), nil
}

func (u *directoryUsecase) cachingEnabled() bool {
	return u.cache != nil && u.cacheTTL > 0
}

type directorySearchCacheKeyInput struct {
	FreeText      string   `json:"q"`
	Location      string   `json:"location"`
	MinExperience int      `json:"min_experience"`
	Skills        []string `json:"skills"`
}

// DirectorySearchCacheKey maps criteria that filter identically to the same
// key. Text filters are case-insensitive but whitespace-sensitive, so only
// case is folded.
func DirectorySearchCacheKey(c domain.SearchCriteria) string {
	in := directorySearchCacheKeyInput{
		FreeText:      strings.ToLower(c.FreeText),
		Location:      strings.ToLower(c.Location),
		MinExperience: c.MinExperience,
		Skills:        directory.ParseSkills(c.SkillsCSV),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return directoryCachePrefix + hex.EncodeToString(sum[:])
}
