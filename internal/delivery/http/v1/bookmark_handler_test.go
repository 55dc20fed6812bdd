package v1

import (
	"net/http"
	"testing"

	"cvhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookmarkHandler_Toggle(t *testing.T) {
	t.Run("Should toggle and acknowledge", func(t *testing.T) {
		h := newHarness()
		h.bookmark.On("Toggle", mock.Anything, sessionFor(companyUserID), sampleCVID, true).Return(nil).Once()

		w := h.do(t, http.MethodPost, "/api/bookmarks/toggle", companyUserID, map[string]any{
			"applicantId":  sampleCVID,
			"isBookmarked": true,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])
		h.bookmark.AssertExpectations(t)
	})

	t.Run("Should reject a body without applicantId", func(t *testing.T) {
		h := newHarness()

		w := h.do(t, http.MethodPost, "/api/bookmarks/toggle", companyUserID, map[string]any{"isBookmarked": false})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "applicantId is required", decodeBody(t, w)["error"])
		h.bookmark.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should surface use case validation", func(t *testing.T) {
		h := newHarness()
		h.bookmark.On("Toggle", mock.Anything, mock.Anything, "not-a-uuid", false).
			Return(apperror.BadRequest("applicantId must be a valid ID")).Once()

		w := h.do(t, http.MethodPost, "/api/bookmarks/toggle", applicantUserID, map[string]any{"applicantId": "not-a-uuid"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "applicantId must be a valid ID", decodeBody(t, w)["error"])
	})
}
