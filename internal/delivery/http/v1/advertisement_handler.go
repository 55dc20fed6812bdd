package v1

import (
	"net/http"

	"cvhub-backend/internal/delivery/http/middleware"
	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdvertisementHandler struct {
	adUC domain.AdvertisementUsecase
}

func NewAdvertisementHandler(protected *gin.RouterGroup, adUC domain.AdvertisementUsecase) {
	handler := &AdvertisementHandler{adUC: adUC}

	ads := protected.Group("/ads")
	{
		ads.GET("/list", handler.List)
		ads.POST("/create", handler.Create)
		ads.DELETE("/:id", handler.Delete)
	}
}

type AdListResponse struct {
	Ads   []domain.Advertisement `json:"ads"`
	Stats domain.AdStats         `json:"stats"`
}

type CreateAdResponse struct {
	AdID string `json:"adId"`
}

// List godoc
// @Summary      List my advertisements
// @Description  Returns the company's ads with aggregate stats
// @Tags         ads
// @Produce      json
// @Success      200  {object}  AdListResponse
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /ads/list [get]
func (h *AdvertisementHandler) List(c *gin.Context) {
	ads, stats, err := h.adUC.ListMyAds(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, AdListResponse{Ads: ads, Stats: stats})
}

// Create godoc
// @Summary      Create an advertisement
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        ad   body      domain.CreateAdInput  true  "Advertisement"
// @Success      200  {object}  CreateAdResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /ads/create [post]
func (h *AdvertisementHandler) Create(c *gin.Context) {
	var input domain.CreateAdInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	ad, err := h.adUC.CreateAd(c.Request.Context(), middleware.GetAuthContext(c), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, CreateAdResponse{AdID: ad.ID})
}

// Delete godoc
// @Summary      Delete an advertisement
// @Tags         ads
// @Produce      json
// @Param        id   path      string  true  "Advertisement ID"
// @Success      200  {object}  response.SuccessBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Security     BearerAuth
// @Router       /ads/{id} [delete]
func (h *AdvertisementHandler) Delete(c *gin.Context) {
	if err := h.adUC.DeleteAd(c.Request.Context(), middleware.GetAuthContext(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c)
}
