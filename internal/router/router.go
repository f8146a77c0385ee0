// Package router is the composition root: it wires repositories, services,
// handlers and middleware into a single gin.Engine.
package router

import (
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/config"
	"github.com/fritz-immanuel/luxtrack/internal/handler"
	"github.com/fritz-immanuel/luxtrack/internal/middleware"
	"github.com/fritz-immanuel/luxtrack/internal/repository"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	sourceRepo := repository.NewSourceRepository(db)
	productRepo := repository.NewProductRepository(db)
	logRepo := repository.NewProductLogRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg)
	customerSvc := service.NewCustomerService(customerRepo, txRepo)
	sourceSvc := service.NewSourceService(sourceRepo)
	productSvc := service.NewProductService(productRepo, logRepo, customerRepo, sourceRepo, userRepo, txRepo)
	txSvc := service.NewTransactionService(txRepo, productRepo, customerRepo, userRepo, logRepo)
	dashboardSvc := service.NewDashboardService(productRepo, customerRepo, sourceRepo, txRepo)

	authH := handler.NewAuthHandler(authSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	sourceH := handler.NewSourceHandler(sourceSvc)
	productH := handler.NewProductHandler(productSvc)
	txH := handler.NewTransactionHandler(txSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	healthH := handler.NewHealthHandler(db, rdb)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.AllowedOrigins()),
	)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.GET("/health", healthH.Check)

	login := api.Group("/auth")
	if rdb != nil {
		login.Use(middleware.LoginRateLimiter(rdb, loginRateLimit, loginRateWindow))
	}
	login.POST("/login", authH.Login)
	login.POST("/refresh", authH.Refresh)

	protected := api.Group("")
	protected.Use(middleware.Auth(authSvc))
	{
		protected.GET("/users/me", authH.Me)

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/auth/register", authH.Register)
			admin.GET("/users", authH.ListUsers)
		}

		protected.POST("/customers", customerH.Create)
		protected.GET("/customers", customerH.List)
		protected.GET("/customers/:id", customerH.Get)
		protected.PUT("/customers/:id", customerH.Update)
		protected.GET("/customers/:id/details", customerH.Details)

		protected.POST("/sources", sourceH.Create)
		protected.GET("/sources", sourceH.List)
		protected.GET("/sources/:id", sourceH.Get)
		protected.PUT("/sources/:id", sourceH.Update)

		protected.POST("/products", productH.Create)
		protected.GET("/products", productH.List)
		protected.GET("/products/:id", productH.Get)
		protected.PUT("/products/:id", productH.Update)
		protected.PUT("/products/:id/status", productH.SetStatus)
		protected.GET("/products/:id/logs", productH.Logs)
		protected.GET("/products/:id/details", productH.Details)

		protected.POST("/transactions", txH.Create)
		protected.GET("/transactions", txH.List)
		protected.GET("/transactions/:id", txH.Get)
		protected.GET("/transactions/:id/items", txH.Items)
		protected.PUT("/transactions/:id/status", txH.SetStatus)
		protected.GET("/transactions/:id/details", txH.Details)
		protected.GET("/transactions/:id/receipt", txH.Receipt)

		protected.GET("/dashboard/stats", dashboardH.Stats)
	}

	return r
}
