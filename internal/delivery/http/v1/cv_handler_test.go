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

func publishedCV() *domain.CV {
	return &domain.CV{
		ID:     sampleCVID,
		UserID: applicantUserID,
		Title:  "Backend CV",
		Status: domain.CVStatusPublished,
		Content: domain.CVContent{
			Title:      "Backend CV",
			Personal:   domain.PersonalInfo{FullName: "Ana Putri", Headline: "Go engineer"},
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
			Skills:     []string{"Go"},
		},
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

func TestCVHandler_Create(t *testing.T) {
	t.Run("Should create a CV from a valid document", func(t *testing.T) {
		h := newHarness()
		h.cv.On("CreateCV", mock.Anything, sessionFor(applicantUserID), mock.MatchedBy(func(c domain.CVContent) bool {
			return c.Personal.FullName == "Ana Putri" && len(c.Skills) == 2 && c.Experience != nil
		})).Return(&domain.CV{ID: sampleCVID}, nil).Once()

		w := h.do(t, http.MethodPost, "/api/cv/create", applicantUserID,
			`{"title":"Backend CV","personal":{"fullName":"Ana Putri"},"experience":null,"skills":["Go","SQL"]}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, sampleCVID, decodeBody(t, w)["cvId"])
		h.cv.AssertExpectations(t)
	})

	t.Run("Should reject a document that fails the schema", func(t *testing.T) {
		h := newHarness()

		w := h.do(t, http.MethodPost, "/api/cv/create", applicantUserID, `{"personal":{"fullName":42}}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "invalid CV content")
		h.cv.AssertNotCalled(t, "CreateCV", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		h := newHarness()

		w := h.do(t, http.MethodPost, "/api/cv/create", applicantUserID, `{"personal":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, w)["error"])
	})
}

func TestCVHandler_List(t *testing.T) {
	t.Run("Should wrap the caller's CVs", func(t *testing.T) {
		h := newHarness()
		h.cv.On("ListMyCVs", mock.Anything, sessionFor(applicantUserID)).Return([]domain.CV{*publishedCV()}, nil).Once()

		w := h.do(t, http.MethodGet, "/api/cv/list", applicantUserID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		cvs := decodeBody(t, w)["cvs"].([]any)
		require.Len(t, cvs, 1)
		assert.Equal(t, sampleCVID, cvs[0].(map[string]any)["id"])
	})
}

func TestCVHandler_Delete(t *testing.T) {
	t.Run("Should delete an owned CV", func(t *testing.T) {
		h := newHarness()
		h.cv.On("DeleteCV", mock.Anything, sessionFor(applicantUserID), sampleCVID).Return(nil).Once()

		w := h.do(t, http.MethodDelete, "/api/cv/"+sampleCVID, applicantUserID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])
	})

	t.Run("Should return 401 when the caller does not own the CV", func(t *testing.T) {
		h := newHarness()
		h.cv.On("DeleteCV", mock.Anything, sessionFor(companyUserID), sampleCVID).
			Return(apperror.Unauthorized("Unauthorized")).Once()

		w := h.do(t, http.MethodDelete, "/api/cv/"+sampleCVID, companyUserID, nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])
	})
}

func TestCVHandler_GetPublic(t *testing.T) {
	t.Run("Should return a published CV anonymously", func(t *testing.T) {
		h := newHarness()
		h.cv.On("GetPublishedCV", mock.Anything, sampleCVID).Return(publishedCV(), nil).Once()

		w := h.do(t, http.MethodGet, "/api/cv/"+sampleCVID, "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		cv := decodeBody(t, w)["cv"].(map[string]any)
		assert.Equal(t, "published", cv["status"])
	})

	t.Run("Should return 404 for drafts", func(t *testing.T) {
		h := newHarness()
		h.cv.On("GetPublishedCV", mock.Anything, sampleCVID).Return(nil, apperror.NotFound("CV not found")).Once()

		w := h.do(t, http.MethodGet, "/api/cv/"+sampleCVID, "", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "CV not found", decodeBody(t, w)["error"])
	})
}

func TestCVHandler_DownloadPDF(t *testing.T) {
	t.Run("Should render a published CV for anonymous callers", func(t *testing.T) {
		h := newHarness()
		h.cv.On("GetExportableCV", mock.Anything, domain.AuthContext{}, sampleCVID).Return(publishedCV(), nil).Once()

		w := h.do(t, http.MethodGet, "/api/cv/"+sampleCVID+"/pdf", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Ana Putri-CV.pdf"`, w.Header().Get("Content-Disposition"))
		assert.True(t, strings.Contains(w.Body.String(), "Ana Putri"))
	})

	t.Run("Should pass the session through for owners", func(t *testing.T) {
		h := newHarness()
		draft := publishedCV()
		draft.Status = domain.CVStatusDraft
		h.cv.On("GetExportableCV", mock.Anything, sessionFor(applicantUserID), sampleCVID).Return(draft, nil).Once()

		w := h.do(t, http.MethodGet, "/api/cv/"+sampleCVID+"/pdf", applicantUserID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		h.cv.AssertExpectations(t)
	})

	t.Run("Should map use case errors", func(t *testing.T) {
		h := newHarness()
		h.cv.On("GetExportableCV", mock.Anything, mock.Anything, sampleCVID).
			Return(nil, apperror.Upstream("Failed to load CV", errors.New("timeout"))).Once()

		w := h.do(t, http.MethodGet, "/api/cv/"+sampleCVID+"/pdf", "", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to load CV", decodeBody(t, w)["error"])
	})
}
