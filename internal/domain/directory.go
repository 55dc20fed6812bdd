package domain

import (
	"context"
	"time"
)

// SearchCriteria are the directory filters. Zero values disable a filter.
type SearchCriteria struct {
	FreeText      string
	Location      string
	MinExperience int
	SkillsCSV     string
}

type DirectoryResult struct {
	ID              string   `json:"id"`
	FullName        string   `json:"fullName"`
	Headline        string   `json:"headline"`
	Location        string   `json:"location"`
	YearsExperience int      `json:"yearsExperience"`
	Skills          []string `json:"skills"`
	CVID            string   `json:"cvId"`
	Bookmarked      bool     `json:"bookmarked"`
}

// SearchCache stores serialized search results. Implementations treat an
// unavailable backend as a miss.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type DirectoryUsecase interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]DirectoryResult, error)
	Export(ctx context.Context, auth AuthContext, criteria SearchCriteria) ([]byte, error)
}
