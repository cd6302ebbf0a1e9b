package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gigconnect/pkg/cache"
	"gigconnect/pkg/config"
	"gigconnect/pkg/database"
	"gigconnect/pkg/jwt"
	"gigconnect/pkg/logger"
	"gigconnect/pkg/middleware"
	"gigconnect/pkg/models"
	"gigconnect/pkg/queue"
	rewardsHTTP "gigconnect/services/rewards/internal/controller/http"
	"gigconnect/services/rewards/internal/repo/persistent"
	"gigconnect/services/rewards/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to Redis: %v", err)
		return nil, err
	}

	// Without the broker the HTTP API still works; job completion
	// rewards queue up until the consumer comes back.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, reward consumer disabled: %v", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	txnRepo := persistent.NewTransactionRepository(a.db)

	// Initialize use cases
	rewardsUseCase := usecase.NewRewardsUseCase(userRepo, txnRepo, a.log)

	// Start consuming job completion rewards
	if a.queueClient != nil {
		if err := a.queueClient.ConsumeRewardTasks(rewardsUseCase.HandleRewardTask); err != nil {
			a.log.Error("Failed to start reward consumer: %v", err)
			return err
		}
	}

	// Initialize HTTP handlers
	rewardsHandler := rewardsHTTP.NewRewardsHandler(rewardsUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(a.jwtService))
	{
		api.POST("/users/:id/rate",
			middleware.RateLimitMiddleware(a.redisClient, 20, time.Minute),
			rewardsHandler.RateUser,
		)
		api.POST("/convert", rewardsHandler.ConvertRatings)
		api.GET("/transactions", rewardsHandler.ListTransactions)
		api.GET("/transactions/:id", rewardsHandler.GetTransaction)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
		{
			admin.POST("/admin/grants", rewardsHandler.GrantCoins)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Rewards service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down rewards service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ connection: %v", err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis connection: %v", err)
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Rewards service exited")
	return nil
}
