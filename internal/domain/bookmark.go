package domain

import (
	"context"
	"time"
)

type BookmarkRepository interface {
	// Add is a no-op when the (userID, cvID) pair already exists.
	Add(ctx context.Context, userID, cvID string) error
	Remove(ctx context.Context, userID, cvID string) error
}

type BookmarkUsecase interface {
	// Toggle removes the bookmark when isBookmarked is true and adds it otherwise.
	Toggle(ctx context.Context, auth AuthContext, cvID string, isBookmarked bool) error
}

// Bookmark links a user to a saved CV. (UserID, CVID) is unique.
type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CVID      string    `json:"cv_id"`
	CreatedAt time.Time `json:"created_at"`
}
