package v1

import (
	"time"

	"cvhub-backend/config"
	"cvhub-backend/internal/delivery/http/middleware"
	"cvhub-backend/internal/domain"
	"cvhub-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	CVUC            domain.CVUsecase
	DirectoryUC     domain.DirectoryUsecase
	BookmarkUC      domain.BookmarkUsecase
	AdvertisementUC domain.AdvertisementUsecase
	HealthUC        usecase.HealthUsecase
	Sessions        *middleware.SessionResolver
	IsServiceKey    func(string) bool
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Sessions))

	optional := api.Group("")
	optional.Use(middleware.OptionalAuthMiddleware(deps.Sessions))

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	authProtected := authGroup.Group("")
	authProtected.Use(middleware.AuthMiddleware(deps.Sessions))
	authTrusted := authGroup.Group("")
	authTrusted.Use(middleware.ServiceKeyMiddleware(deps.IsServiceKey))

	NewAuthHandler(authGroup, authProtected, authTrusted, deps.AuthUC)
	NewDirectoryHandler(api, protected, deps.DirectoryUC)
	NewBookmarkHandler(protected, deps.BookmarkUC)
	NewCVHandler(api, protected, optional, deps.CVUC)
	NewAdvertisementHandler(protected, deps.AdvertisementUC)

	return r
}
