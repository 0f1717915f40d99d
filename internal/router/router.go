package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mkralj/heating-cms/internal/config"
	"github.com/mkralj/heating-cms/internal/handler"
	"github.com/mkralj/heating-cms/internal/middleware"
	"github.com/mkralj/heating-cms/internal/repository"
	"github.com/mkralj/heating-cms/internal/service"
	"github.com/mkralj/heating-cms/pkg/auth"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine. Tests
// drive the same route table as cmd/server.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	statsService := service.NewStatsService(db)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientRepo)
	deviceHandler := handler.NewDeviceHandler(deviceRepo, catalogRepo)
	taskHandler := handler.NewTaskHandler(taskRepo)
	statsHandler := handler.NewStatsHandler(statsService)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	// Swagger UI; swagger.json is generated by swag into ./docs
	r.StaticFile("/docs/swagger.json", "./docs/swagger.json")
	url := ginSwagger.URL("/docs/swagger.json")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	r.GET("/health", healthHandler.Check)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
			authGroup.GET("/me", middleware.AuthMiddleware(jwtManager), authHandler.Me)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager))
		{
			clients := protected.Group("/clients")
			{
				clients.GET("", clientHandler.List)
				clients.POST("", clientHandler.Create)
				clients.GET("/:id", clientHandler.Get)
				clients.PUT("/:id", clientHandler.Update)
				clients.DELETE("/:id", clientHandler.Delete)
			}

			devices := protected.Group("/devices")
			{
				devices.GET("", deviceHandler.List)
				devices.POST("", deviceHandler.Create)
				// Static segments must be registered before the :id routes
				devices.GET("/types", deviceHandler.DeviceTypes)
				devices.GET("/brands", deviceHandler.Brands)
				devices.GET("/brands/:brandId/models", deviceHandler.ModelsByBrand)
				devices.GET("/client/:clientId", deviceHandler.ListByClient)
				devices.GET("/:id", deviceHandler.Get)
				devices.PUT("/:id", deviceHandler.Update)
				devices.DELETE("/:id", deviceHandler.Delete)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("", taskHandler.List)
				tasks.POST("", taskHandler.Create)
				tasks.GET("/:id", taskHandler.Get)
				tasks.PUT("/:id", taskHandler.Update)
				tasks.DELETE("/:id", taskHandler.Delete)
			}

			protected.GET("/statistics/dashboard", statsHandler.Dashboard)

			settings := protected.Group("/settings")
			{
				settings.GET("/notifications", settingsHandler.Get)
				settings.PUT("/notifications", settingsHandler.Update)
			}
		}
	}

	return r
}
