package handlers

import (
	"net/http"
	"sync"

	"github.com/SscSPs/wholesale_payments/cmd/docs"
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/middleware"
	"github.com/SscSPs/wholesale_payments/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Limiters holds the rate limiters applied to public and authenticated routes.
// A nil limiter disables limiting for that group.
type Limiters struct {
	Login *limiter.Limiter
	API   *limiter.Limiter
}

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("standing_status", func(fl validator.FieldLevel) bool {
				return domain.StandingStatus(fl.Field().String()).IsValid()
			})
		}
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiters Limiters,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes
	public := r.Group("/api/v1")
	registerAuthRoutes(public, services.Auth, limiters.Login)

	setupAPIV1Routes(r, cfg, services, limiters.API)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	if apiLimiter != nil {
		v1.Use(middleware.RateLimit(apiLimiter))
	}

	registerPaymentRoutes(v1, services.Payments)
	registerStoreRoutes(v1, services.Store, services.Order)
	registerOrderRoutes(v1, services.Order)
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
