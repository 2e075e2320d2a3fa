package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/blance-app/blance_backend/cmd/docs"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/middleware"
	"github.com/blance-app/blance_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Auth endpoints take 10 requests per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	authLimiter := limiter.New(memory.NewStore(), rate)
	registerAuthRoutes(r, cfg, services, middleware.RateLimit(authLimiter))

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.UserService)
	RegisterFxRoutes(v1, services.FxService)
	registerShareRoutes(v1, services.ShareService)
	registerTransactionRoutes(v1, services.TransactionService)
	registerAccountRoutes(v1, services.AccountService)
	registerCategoryRoutes(v1, services.CategoryService)
	registerBudgetRoutes(v1, services.BudgetService)
	registerRecurringRoutes(v1, services.RecurringService)
	registerSummaryRoutes(v1, services.SummaryService)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
