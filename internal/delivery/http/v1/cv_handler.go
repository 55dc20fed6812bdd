package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cvhub-backend/internal/delivery/http/middleware"
	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/document"
	"cvhub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// maxCVBodyBytes bounds the builder payload.
const maxCVBodyBytes = 1 << 20

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(public, protected, optional *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := protected.Group("/cv")
	{
		cvs.GET("/list", handler.List)
		cvs.POST("/create", handler.Create)
		cvs.DELETE("/:id", handler.Delete)
	}

	public.GET("/cv/:id", handler.GetPublic)
	optional.GET("/cv/:id/pdf", handler.DownloadPDF)
}

type CVListResponse struct {
	CVs []domain.CV `json:"cvs"`
}

type CreateCVResponse struct {
	CVID string `json:"cvId"`
}

type CVResponse struct {
	CV *domain.CV `json:"cv"`
}

// List godoc
// @Summary      List my CVs
// @Description  Returns the caller's CVs, most recently updated first
// @Tags         cv
// @Produce      json
// @Success      200  {object}  CVListResponse
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /cv/list [get]
func (h *CVHandler) List(c *gin.Context) {
	cvs, err := h.cvUC.ListMyCVs(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, CVListResponse{CVs: cvs})
}

// Create godoc
// @Summary      Create a CV
// @Description  Stores the builder document as a published CV owned by the caller
// @Tags         cv
// @Accept       json
// @Produce      json
// @Param        cv  body      domain.CVContent  true  "CV content"
// @Success      200  {object}  CreateCVResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /cv/create [post]
func (h *CVHandler) Create(c *gin.Context) {
	raw, err := readLimited(c, maxCVBodyBytes)
	if err != nil {
		c.Error(apperror.BadRequest("Request body too large"))
		return
	}

	if err := validation.ValidateCVDocument(raw); err != nil {
		var schemaErr *validation.SchemaError
		if errors.As(err, &schemaErr) {
			c.Error(apperror.BadRequest(schemaErr.Error()))
			return
		}
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	var content domain.CVContent
	if err := json.Unmarshal(raw, &content); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	cv, err := h.cvUC.CreateCV(c.Request.Context(), middleware.GetAuthContext(c), content)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, CreateCVResponse{CVID: cv.ID})
}

// Delete godoc
// @Summary      Delete a CV
// @Description  Deletes a CV owned by the caller
// @Tags         cv
// @Produce      json
// @Param        id   path      string  true  "CV ID"
// @Success      200  {object}  response.SuccessBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /cv/{id} [delete]
func (h *CVHandler) Delete(c *gin.Context) {
	if err := h.cvUC.DeleteCV(c.Request.Context(), middleware.GetAuthContext(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c)
}

// GetPublic godoc
// @Summary      Get a published CV
// @Tags         cv
// @Produce      json
// @Param        id   path      string  true  "CV ID"
// @Success      200  {object}  CVResponse
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /cv/{id} [get]
func (h *CVHandler) GetPublic(c *gin.Context) {
	cv, err := h.cvUC.GetPublishedCV(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, CVResponse{CV: cv})
}

// DownloadPDF godoc
// @Summary      Download a CV
// @Description  Returns the CV as a printable document. Published CVs are public; drafts only for the owner.
// @Tags         cv
// @Produce      application/pdf
// @Param        id   path      string  true  "CV ID"
// @Success      200  {file}    binary
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /cv/{id}/pdf [get]
func (h *CVHandler) DownloadPDF(c *gin.Context) {
	cv, err := h.cvUC.GetExportableCV(c.Request.Context(), middleware.GetAuthContext(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	doc, err := document.RenderCV(cv.Content)
	if err != nil {
		c.Error(apperror.Upstream("Failed to generate PDF", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, document.Filename(cv.Content.Personal.FullName)))
	c.Data(http.StatusOK, "application/pdf", doc)
}
