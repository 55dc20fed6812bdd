package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cvhub-backend/internal/delivery/http/middleware"
	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DirectoryHandler struct {
	directoryUC domain.DirectoryUsecase
}

func NewDirectoryHandler(public, protected *gin.RouterGroup, directoryUC domain.DirectoryUsecase) {
	handler := &DirectoryHandler{directoryUC: directoryUC}

	public.GET("/directory/search", handler.Search)
	protected.GET("/directory/export", handler.Export)
}

// SearchResponse wraps directory results.
type SearchResponse struct {
	Applicants []domain.DirectoryResult `json:"applicants"`
}

// criteriaFromQuery reads the directory filters. minExperience is read from
// its leading digits ("3yrs" is 3); without any it means no minimum.
func criteriaFromQuery(c *gin.Context) domain.SearchCriteria {
	minExperience := leadingInt(c.Query("minExperience"))
	return domain.SearchCriteria{
		FreeText:      c.Query("search"),
		Location:      c.Query("location"),
		MinExperience: minExperience,
		SkillsCSV:     c.Query("skills"),
	}
}

// leadingInt parses the run of digits at the start of s, ignoring surrounding
// whitespace. Signed, empty or overflowing input yields 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Search godoc
// @Summary      Search the applicant directory
// @Description  Filters published CVs whose authors have an applicant profile
// @Tags         directory
// @Produce      json
// @Param        search         query     string  false  "Substring of name or skills"
// @Param        location       query     string  false  "Exact location, case-insensitive"
// @Param        minExperience  query     int     false  "Minimum years of experience"
// @Param        skills         query     string  false  "Comma-separated skills, any-of"
// @Success      200  {object}  SearchResponse
// @Failure      500  {object}  response.ErrorBody
// @Router       /directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	results, err := h.directoryUC.Search(c.Request.Context(), criteriaFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, SearchResponse{Applicants: results})
}

// Export godoc
// @Summary      Export the applicant directory
// @Description  Runs the directory search and returns the results as an XLSX workbook (companies only)
// @Tags         directory
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search         query     string  false  "Substring of name or skills"
// @Param        location       query     string  false  "Exact location, case-insensitive"
// @Param        minExperience  query     int     false  "Minimum years of experience"
// @Param        skills         query     string  false  "Comma-separated skills, any-of"
// @Success      200  {file}    binary
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /directory/export [get]
func (h *DirectoryHandler) Export(c *gin.Context) {
	data, err := h.directoryUC.Export(c.Request.Context(), middleware.GetAuthContext(c), criteriaFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("applicants_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
