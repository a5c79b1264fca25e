package router

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options holds everything the route table needs
type Options struct {
	DB     *gorm.DB
	Logger *logrus.Logger

	CORSAllowedOrigins []string

	// Redis backs the rate limiter on mutating routes; nil disables it
	Redis              *redis.Client
	RateLimitPerMinute int

	EnableSwagger bool
}

// New builds the Gin engine with services, controllers and middleware wired together
func New(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	menuController := controllers.NewMenuController(services.NewMenuService(opts.DB))
	salesController := controllers.NewSalesController(services.NewSalesService(opts.DB))
	healthController := controllers.NewHealthController(opts.DB)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	setupRoutes(router, menuController, salesController, healthController,
		middleware.RateLimiter(opts.Redis, opts.RateLimitPerMinute, logger), opts.EnableSwagger)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Route not found",
			map[string]interface{}{"path": c.Request.URL.Path}))
	})

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(
	router *gin.Engine,
	menuController controllers.MenuController,
	salesController controllers.SalesController,
	healthController *controllers.HealthController,
	limiter gin.HandlerFunc,
	enableSwagger bool,
) {
	// Health check endpoint
	router.GET("/health", healthController.HealthCheck)

	api := router.Group("/api")
	{
		menu := api.Group("/menu")
		{
			menu.GET("", menuController.ListMenu)
			menu.POST("", limiter, menuController.CreateMenu)
			menu.PUT("/:id", limiter, menuController.UpdateMenu)
			menu.DELETE("/:id", limiter, menuController.DeleteMenu)
		}

		sales := api.Group("/sales")
		{
			sales.GET("", salesController.ListSales)
			sales.GET("/summary", salesController.SalesSummary)
			sales.POST("", limiter, salesController.CreateSale)
			sales.DELETE("/:id", limiter, salesController.DeleteSale)
		}
	}

	// Swagger documentation
	if enableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
