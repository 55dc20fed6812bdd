package v1

import (
	"net/http"

	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports "ok" or "degraded" plus the state of each dependency
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if h.healthUC == nil {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
		return
	}
	response.JSON(c, http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
