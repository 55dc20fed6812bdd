package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

const (
	CVStatusDraft     = "draft"
	CVStatusPublished = "published"
)

type CV struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Content   CVContent `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cv *CV) IsPublished() bool {
	return cv.Status == CVStatusPublished
}

// CVContent is the document stored in cvs.content. Decoding never leaves a nil
// slice behind, so readers need no null guards.
type CVContent struct {
	Title      string       `json:"title" validate:"max=200,no_emoji"`
	Personal   PersonalInfo `json:"personal"`
	Experience []Experience `json:"experience" validate:"max=50,dive"`
	Education  []Education  `json:"education" validate:"max=50,dive"`
	Skills     []string     `json:"skills" validate:"max=100,dive,max=100"`
}

type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required,max=120,valid_name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,valid_phone"`
	Location string `json:"location" validate:"max=200"`
	Headline string `json:"headline" validate:"max=200"`
	Summary  string `json:"summary" validate:"max=5000"`
}

type Experience struct {
	ID               string `json:"id"`
	Company          string `json:"company" validate:"max=200"`
	Position         string `json:"position" validate:"max=200"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	Description      string `json:"description" validate:"max=5000"`
}

type Education struct {
	ID             string `json:"id"`
	School         string `json:"school" validate:"max=200"`
	Degree         string `json:"degree" validate:"max=200"`
	Field          string `json:"field" validate:"max=200"`
	GraduationDate string `json:"graduationDate"`
	Description    string `json:"description" validate:"max=5000"`
}

// UnmarshalJSON decodes strictly first. A document with wrongly typed fields
// (a number in skills, a numeric startDate) falls back to a lenient decode that
// stringifies scalars and drops what cannot be read.
func (c *CVContent) UnmarshalJSON(data []byte) error {
	type plain CVContent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return err
		}
		lenient, lerr := decodeLenientContent(data)
		if lerr != nil {
			return err
		}
		*c = lenient
		c.normalize()
		return nil
	}
	*c = CVContent(p)
	c.normalize()
	return nil
}

func (c *CVContent) normalize() {
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
}

// CVSection is one row of cv_sections, written alongside the CV.
type CVSection struct {
	SectionType string
	Content     any
	OrderIndex  int
}

// Sections splits the content into its four ordered sections.
func (c CVContent) Sections() []CVSection {
	c.normalize()
	return []CVSection{
		{SectionType: "personal", Content: c.Personal, OrderIndex: 0},
		{SectionType: "experience", Content: c.Experience, OrderIndex: 1},
		{SectionType: "education", Content: c.Education, OrderIndex: 2},
		{SectionType: "skills", Content: c.Skills, OrderIndex: 3},
	}
}

type CVRepository interface {
	Create(ctx context.Context, cv *CV) error
	GetByID(ctx context.Context, id string) (*CV, error)
	ListByUserID(ctx context.Context, userID string) ([]CV, error)
	ListPublished(ctx context.Context) ([]CV, error)
	Delete(ctx context.Context, id string) error
}

type CVUsecase interface {
	CreateCV(ctx context.Context, auth AuthContext, content CVContent) (*CV, error)
	ListMyCVs(ctx context.Context, auth AuthContext) ([]CV, error)
	DeleteCV(ctx context.Context, auth AuthContext, id string) error
	GetPublishedCV(ctx context.Context, id string) (*CV, error)
	GetExportableCV(ctx context.Context, auth AuthContext, id string) (*CV, error)
}
