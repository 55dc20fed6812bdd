package v1

import (
	"cvhub-backend/internal/delivery/http/middleware"
	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkUC domain.BookmarkUsecase
}

func NewBookmarkHandler(protected *gin.RouterGroup, bookmarkUC domain.BookmarkUsecase) {
	handler := &BookmarkHandler{bookmarkUC: bookmarkUC}

	protected.POST("/bookmarks/toggle", handler.Toggle)
}

// ToggleBookmarkRequest carries the CV id (named applicantId by the frontend)
// and the bookmark state the client currently shows.
type ToggleBookmarkRequest struct {
	ApplicantID  string `json:"applicantId" binding:"required"`
	IsBookmarked bool   `json:"isBookmarked"`
}

// Toggle godoc
// @Summary      Toggle a bookmark
// @Description  Removes the bookmark when isBookmarked is true, adds it otherwise
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        request  body      ToggleBookmarkRequest  true  "Bookmark toggle"
// @Success      200  {object}  response.SuccessBody
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /bookmarks/toggle [post]
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	var req ToggleBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("applicantId is required"))
		return
	}

	if err := h.bookmarkUC.Toggle(c.Request.Context(), middleware.GetAuthContext(c), req.ApplicantID, req.IsBookmarked); err != nil {
		c.Error(err)
		return
	}
	response.Success(c)
}
