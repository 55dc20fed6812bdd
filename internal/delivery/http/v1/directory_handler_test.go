package v1

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirectoryHandler_Search(t *testing.T) {
	t.Run("Should pass query filters through and wrap results", func(t *testing.T) {
		h := newHarness()
		want := domain.SearchCriteria{FreeText: "go", Location: "Jakarta", MinExperience: 3, SkillsCSV: "Go,SQL"}
		h.directory.On("Search", mock.Anything, want).Return([]domain.DirectoryResult{
			{ID: "p1", FullName: "Ana", CVID: sampleCVID, Skills: []string{"Go"}},
		}, nil).Once()

		w := h.do(t, http.MethodGet, "/api/directory/search?search=go&location=Jakarta&minExperience=3&skills=Go,SQL", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		applicants := decodeBody(t, w)["applicants"].([]any)
		require.Len(t, applicants, 1)
		assert.Equal(t, "Ana", applicants[0].(map[string]any)["fullName"])
		assert.Equal(t, false, applicants[0].(map[string]any)["bookmarked"])
		h.directory.AssertExpectations(t)
	})

	t.Run("Should treat a non-numeric minExperience as no minimum", func(t *testing.T) {
		h := newHarness()
		h.directory.On("Search", mock.Anything, domain.SearchCriteria{}).Return([]domain.DirectoryResult{}, nil).Once()

		w := h.do(t, http.MethodGet, "/api/directory/search?minExperience=lots", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []any{}, decodeBody(t, w)["applicants"])
	})

	t.Run("Should read minExperience from its leading digits", func(t *testing.T) {
		h := newHarness()
		h.directory.On("Search", mock.Anything, domain.SearchCriteria{MinExperience: 3}).Return([]domain.DirectoryResult{}, nil).Once()

		w := h.do(t, http.MethodGet, "/api/directory/search?minExperience=3yrs", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		h.directory.AssertExpectations(t)
	})

	t.Run("Should hide store detail on failure", func(t *testing.T) {
		h := newHarness()
		h.directory.On("Search", mock.Anything, mock.Anything).
			Return(nil, apperror.Upstream("Failed to search applicants", errors.New("pq: connection reset"))).Once()

		w := h.do(t, http.MethodGet, "/api/directory/search", "", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to search applicants", decodeBody(t, w)["error"])
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestLeadingInt(t *testing.T) {
	cases := map[string]int{
		"":                     0,
		"3":                    3,
		"3yrs":                 3,
		" 12 years ":           12,
		"lots":                 0,
		"-2":                   0,
		"1.5":                  1,
		"99999999999999999999": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, leadingInt(in), "input %q", in)
	}
}

func TestDirectoryHandler_Export(t *testing.T) {
	t.Run("Should stream the workbook as an attachment", func(t *testing.T) {
		h := newHarness()
		h.directory.On("Export", mock.Anything, sessionFor(companyUserID), domain.SearchCriteria{Location: "Bandung"}).
			Return([]byte("PK\x03\x04"), nil).Once()

		w := h.do(t, http.MethodGet, "/api/directory/export?location=Bandung", companyUserID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		disposition := w.Header().Get("Content-Disposition")
		assert.True(t, strings.HasPrefix(disposition, `attachment; filename="applicants_`))
		assert.True(t, strings.HasSuffix(disposition, `.xlsx"`))
		assert.Equal(t, "PK\x03\x04", w.Body.String())
	})

	t.Run("Should return 403 for applicants", func(t *testing.T) {
		h := newHarness()
		h.directory.On("Export", mock.Anything, sessionFor(applicantUserID), mock.Anything).
			Return(nil, apperror.Forbidden("Only companies can export the directory")).Once()

		w := h.do(t, http.MethodGet, "/api/directory/export", applicantUserID, nil)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Only companies can export the directory", decodeBody(t, w)["error"])
	})
}
