package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/atlastrek/travel_ops_app/cmd/docs"
	portssvc "github.com/atlastrek/travel_ops_app/internal/core/ports/services"
	"github.com/atlastrek/travel_ops_app/internal/dto"
	"github.com/atlastrek/travel_ops_app/internal/middleware"
	"github.com/atlastrek/travel_ops_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, postingSvc portssvc.JournalPostingSvc) {
	registerCustomValidators()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, postingSvc)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators installs domain validators on gin's binding
// engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("businessevent", dto.BusinessEventValidator)
	}
}

// setupAPIV1Routes configures the /api/v1 group behind auth.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, postingSvc portssvc.JournalPostingSvc) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	events := newEventHandler(postingSvc)
	v1.POST("/events", events.processEvent)

	journals := newJournalHandler(postingSvc)
	v1.GET("/journals", journals.listEntries)
	v1.GET("/journals/:entryID", journals.getEntry)
	v1.POST("/journals/:entryID/reverse", journals.reverseEntry)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
