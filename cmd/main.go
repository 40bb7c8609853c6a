package main

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockprep/config"
	"github.com/lshigami/mockprep/database"
	_ "github.com/lshigami/mockprep/docs" // Swagger docs
	"github.com/lshigami/mockprep/internal/auth"
	"github.com/lshigami/mockprep/internal/catalog"
	adminctrl "github.com/lshigami/mockprep/internal/controller/admin"
	userctrl "github.com/lshigami/mockprep/internal/controller/user"
	"github.com/lshigami/mockprep/internal/logger"
	"github.com/lshigami/mockprep/internal/middleware"
	"github.com/lshigami/mockprep/internal/model"
	"github.com/lshigami/mockprep/internal/repository"
	"github.com/lshigami/mockprep/internal/service"
	"github.com/lshigami/mockprep/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Mock Test API
// @version 1.0
// @description Timed mock tests for students: catalog, attempts with a countdown, scoring and review, and session expiry notices.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("APP_ENV") != "production")

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedis,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewTestAttemptRepository,
			repository.NewUserRepository,
			repository.NewMessageRepository,
		),

		// Auth and attempt engine
		fx.Provide(
			func(cfg *config.Config) *auth.Tokens {
				return auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
			},
			func(client *redis.Client) auth.RevocationList {
				return auth.NewRedisRevocationList(client)
			},
			auth.NewSessions,
			auth.NewAuthenticator,
			func(sessions *auth.Sessions, messages service.MessageService, cfg *config.Config) *auth.ExpiryWatcher {
				return auth.NewExpiryWatcher(sessions, messages, cfg.Auth.SessionCheckInterval)
			},
			func() *session.Store {
				return session.NewStore(time.Now)
			},
			func(store *session.Store, attempts service.AttemptService, cfg *config.Config) *session.Ticker {
				return session.NewTicker(store, cfg.Attempts.TickInterval, attempts.RecordExpired)
			},
			func(testRepo repository.TestRepository, authn *auth.Authenticator) catalog.Source {
				return service.NewCatalogSource(testRepo, authn)
			},
			catalog.New,
		),

		// Services Layer
		fx.Provide(
			service.NewScoreConverterService,
			service.NewExplanationService,
			service.NewMessageService,
			service.NewUserTestService,
			service.NewAttemptService,
			service.NewAdminTestService,
			service.NewAuthService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			userctrl.NewAttemptController,
			userctrl.NewAuthController,
			userctrl.NewMessageController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartBackgroundJobs),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application did not stop cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authn *auth.Authenticator,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	attemptCtrl *userctrl.AttemptController,
	authCtrl *userctrl.AuthController,
	messageCtrl *userctrl.MessageController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", middleware.RequireAuth(authn), authCtrl.Logout)
	}

	protected := api.Group("", middleware.RequireAuth(authn))
	{
		protected.GET("/tests", userTestCtrl.GetAllTests)
		protected.GET("/tests/:test_id", userTestCtrl.GetTestDetails)
		protected.POST("/tests/:test_id/attempts", userTestCtrl.StartTestAttempt)
		protected.GET("/tests/:test_id/my-attempts", userTestCtrl.GetUserTestAttempts)
		protected.GET("/test-attempts/:attempt_id", attemptCtrl.GetAttemptDetails)

		current := protected.Group("/attempts/current")
		current.GET("", attemptCtrl.GetCurrent)
		current.PUT("/answers/:index", attemptCtrl.AnswerQuestion)
		current.POST("/submit", attemptCtrl.Submit)
		current.GET("/result", attemptCtrl.GetResult)
		current.DELETE("", attemptCtrl.Reset)

		protected.GET("/messages", messageCtrl.GetMessages)

		adminGroup := protected.Group("/admin/tests")
		adminGroup.POST("", adminTestCtrl.CreateTest)
		adminGroup.POST("/:test_id/publish", adminTestCtrl.PublishTest)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Mock test API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartBackgroundJobs runs the attempt ticker and the session expiry watcher
// for the lifetime of the app.
func StartBackgroundJobs(lc fx.Lifecycle, ticker *session.Ticker, watcher *auth.ExpiryWatcher) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				if err := ticker.Start(ctx); err != nil {
					log.Error().Err(err).Msg("Attempt ticker failed")
				}
			}()
			go func() {
				defer wg.Done()
				if err := watcher.Start(ctx); err != nil {
					log.Error().Err(err).Msg("Session expiry watcher failed")
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Test{},
		&model.Question{},
		&model.TestAttempt{},
		&model.Answer{},
		&model.Message{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
