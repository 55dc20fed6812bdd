// Package directory joins published CVs with applicant profiles and user
// records and filters them for the public applicant directory.
package directory

import (
	"strings"

	"cvhub-backend/internal/domain"
)

const unknownName = "Unknown"

// Search filters cvs by criteria and projects the survivors into directory
// results. Order follows cvs. A CV whose author has no applicant profile is
// dropped; Search never fails.
func Search(c domain.SearchCriteria, cvs []domain.CV, profiles []domain.ApplicantProfile, users []domain.User) []domain.DirectoryResult {
	profileByUser := make(map[string]domain.ApplicantProfile, len(profiles))
	for _, p := range profiles {
		profileByUser[p.UserID] = p
	}
	userByID := make(map[string]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	f := newFilter(c)
	results := make([]domain.DirectoryResult, 0, len(cvs))
	for i := range cvs {
		cv := &cvs[i]
		if cv.Status != domain.CVStatusPublished {
			continue
		}
		profile, ok := profileByUser[cv.UserID]
		if !ok {
			continue
		}
		if !f.match(cv, profile) {
			continue
		}
		results = append(results, project(cv, profile, userByID[cv.UserID]))
	}
	return results
}

type filter struct {
	text          string
	location      string
	minExperience int
	skills        []string
}

func newFilter(c domain.SearchCriteria) filter {
	return filter{
		text:          strings.ToLower(c.FreeText),
		location:      strings.ToLower(c.Location),
		minExperience: c.MinExperience,
		skills:        ParseSkills(c.SkillsCSV),
	}
}

func (f filter) match(cv *domain.CV, p domain.ApplicantProfile) bool {
	return f.matchText(cv) &&
		f.matchLocation(p) &&
		p.YearsExperience >= f.minExperience &&
		f.matchSkills(cv)
}

func (f filter) matchText(cv *domain.CV) bool {
	if f.text == "" {
		return true
	}
	name := strings.ToLower(cv.Content.Personal.FullName)
	if strings.Contains(name, f.text) {
		return true
	}
	skills := strings.ToLower(strings.Join(cv.Content.Skills, " "))
	return strings.Contains(skills, f.text)
}

func (f filter) matchLocation(p domain.ApplicantProfile) bool {
	if f.location == "" {
		return true
	}
	return strings.ToLower(p.Location) == f.location
}

// matchSkills is any-of: one required skill present is enough.
func (f filter) matchSkills(cv *domain.CV) bool {
	if len(f.skills) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(cv.Content.Skills))
	for _, s := range cv.Content.Skills {
		have[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range f.skills {
		if _, ok := have[s]; ok {
			return true
		}
	}
	return false
}

func project(cv *domain.CV, p domain.ApplicantProfile, u domain.User) domain.DirectoryResult {
	name := u.FullName
	if name == "" {
		name = unknownName
	}
	skills := cv.Content.Skills
	if skills == nil {
		skills = []string{}
	}
	return domain.DirectoryResult{
		ID:              p.ID,
		FullName:        name,
		Headline:        cv.Content.Personal.Headline,
		Location:        p.Location,
		YearsExperience: p.YearsExperience,
		Skills:          skills,
		CVID:            cv.ID,
		Bookmarked:      false,
	}
}

// ParseSkills splits a comma-separated list into trimmed, lowercased,
// non-empty skill names.
func ParseSkills(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AuthorIDs returns the distinct author ids of cvs in first-seen order.
func AuthorIDs(cvs []domain.CV) []string {
	seen := make(map[string]struct{}, len(cvs))
	ids := make([]string, 0, len(cvs))
	for _, cv := range cvs {
		if _, ok := seen[cv.UserID]; ok {
			continue
		}
		seen[cv.UserID] = struct{}{}
		ids = append(ids, cv.UserID)
	}
	return ids
}
