package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/martapiva/presenze_tracker_app/cmd/docs"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/middleware"
	"github.com/martapiva/presenze_tracker_app/internal/platform/config"
	"github.com/martapiva/presenze_tracker_app/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	// The kiosk frontend is served from a different origin.
	r.Use(cors.Default())
	r.Use(middleware.PosthogMiddleware(posthogClient))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public shared-password login
	RegisterAuthRoutes(r, cfg)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group: a rate-limited public slice
// for the kiosk, and a token-protected slice for the admin panel.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// The kiosk endpoints carry no authentication, so they sit behind an
	// IP rate limit instead.
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	public := r.Group("/api/v1", middleware.RateLimit(ipLimiter))
	RegisterPublicWorkerRoutes(public, services.Worker)
	RegisterPublicAttendanceRoutes(public, services.Attendance)

	admin := r.Group("/api/v1", middleware.AdminAuthMiddleware(cfg.JWTSecret))
	RegisterWorkerRoutes(admin, services.Worker)
	RegisterAttendanceRoutes(admin, services.Attendance)
	RegisterReportingRoutes(admin, services.Reporting)
	RegisterSettingsRoutes(admin, services.Attendance)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
