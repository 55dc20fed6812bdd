package usecase

import (
	"context"
	"strings"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"

	"github.com/google/uuid"
)

type bookmarkUsecase struct {
	bookmarkRepo domain.BookmarkRepository
}

// NewBookmarkUsecase wires bookmark toggling.
func NewBookmarkUsecase(bookmarkRepo domain.BookmarkRepository) domain.BookmarkUsecase {
	return &bookmarkUsecase{bookmarkRepo: bookmarkRepo}
}

// Toggle flips the caller's bookmark on cvID. isBookmarked is the state the
// client currently shows.
func (u *bookmarkUsecase) Toggle(ctx context.Context, auth domain.AuthContext, cvID string, isBookmarked bool) error {
	if err := requireSession(auth); err != nil {
		return err
	}
	cvID = strings.TrimSpace(cvID)
	if _, err := uuid.Parse(cvID); err != nil {
		return apperror.BadRequest("applicantId must be a valid ID")
	}

	var err error
	if isBookmarked {
		err = u.bookmarkRepo.Remove(ctx, auth.UserID, cvID)
	} else {
		err = u.bookmarkRepo.Add(ctx, auth.UserID, cvID)
	}
	if err != nil {
		return apperror.Upstream("Failed to toggle bookmark", err)
	}
	return nil
}
