package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ytareq/portfolio/internal/content"
	"github.com/ytareq/portfolio/internal/handlers"
	"github.com/ytareq/portfolio/internal/mailer"
	"github.com/ytareq/portfolio/internal/metrics"
	"github.com/ytareq/portfolio/internal/middleware"
	"github.com/ytareq/portfolio/internal/repositories"
	"github.com/ytareq/portfolio/internal/services"
	"github.com/ytareq/portfolio/internal/workers"
	"github.com/ytareq/portfolio/pkg/config"
	"github.com/ytareq/portfolio/pkg/database"
	"github.com/ytareq/portfolio/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	notificationQueueSize = 100
	shutdownTimeout       = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Init(l)

	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize dependencies
	m := metrics.New()
	messageRepo := repositories.NewMessageRepository(db)

	var (
		notifier      services.Notifier
		workerManager *workers.WorkerManager
	)
	if cfg.Notifier.Enabled {
		queue := services.NewNotificationQueue(notificationQueueSize)
		notifier = queue

		smtpMailer := mailer.NewSMTPMailer(mailer.SMTPConfig{
			Addr:     cfg.Mail.Addr(),
			Host:     cfg.Mail.Host,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			TLSMode:  cfg.Mail.TLSMode,
		})
		notificationService := services.NewNotificationService(
			messageRepo, smtpMailer, cfg.Mail.From, cfg.Mail.To, cfg.Notifier.ClaimTimeout, m,
		)
		workerManager = workers.NewWorkerManager(workers.ManagerConfig{
			Workers:      cfg.Notifier.Workers,
			PollInterval: cfg.Notifier.PollInterval,
			BatchSize:    cfg.Notifier.BatchSize,
		}, notificationService, queue.IDs())
	} else {
		logger.Info("Email notifications disabled")
	}

	contactService := services.NewContactService(messageRepo, notifier, m)
	githubService := services.NewGitHubService(cfg.GitHub.Token)

	// Initialize router
	router, err := newRouter(cfg, m)
	if err != nil {
		logger.Fatalf("Failed to initialize router: %v", err)
	}

	setupRoutes(router, cfg, db, m, contactService, githubService, workerManager)

	// Setup server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if workerManager != nil {
		if err := workerManager.StartAll(gctx); err != nil {
			logger.Fatalf("Failed to start workers: %v", err)
		}
	}

	g.Go(func() error {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if workerManager != nil {
			if stopErr := workerManager.StopAll(); stopErr != nil {
				logger.WithError(stopErr).Warn("Failed to stop workers")
			}
		}
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// newRouter creates the engine with the global middleware. X-Forwarded-For is
// only honored when the peer is one of the configured proxies.
func newRouter(cfg *config.Config, m *metrics.Metrics) (*gin.Engine, error) {
	router := gin.New()

	var proxies []string
	if len(cfg.Server.TrustedProxies) > 0 {
		proxies = cfg.Server.TrustedProxies
	}
	if err := router.SetTrustedProxies(proxies); err != nil {
		return nil, fmt.Errorf("invalid server.trusted_proxies: %w", err)
	}

	router.Use(gin.Recovery(), middleware.RequestLogger(m), middleware.CORS(cfg.CORS.AllowedOrigins))
	return router, nil
}

func setupRoutes(router *gin.Engine, cfg *config.Config, db *sql.DB, m *metrics.Metrics, contactService *services.ContactService, githubService *services.GitHubService, workerManager *workers.WorkerManager) {
	// Initialize handlers
	contactHandler := handlers.NewContactHandler(contactService)
	contentHandler := handlers.NewContentHandler(githubService)
	heroHandler := handlers.NewHeroHandler(content.NewTypewriter(content.HeroPhrases))
	notFoundHandler := handlers.NewNotFoundHandler()

	var healthHandler *handlers.HealthHandler
	if workerManager != nil {
		healthHandler = handlers.NewHealthHandler(db, workerManager)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	api := router.Group("/api")
	{
		contact := []gin.HandlerFunc{contactHandler.Submit}
		if cfg.RateLimit.RequestsPerMinute > 0 {
			limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
			contact = append([]gin.HandlerFunc{middleware.RateLimit(limiter, m)}, contact...)
		}
		api.POST("/contact", contact...)

		api.GET("/profile", contentHandler.Profile)
		api.GET("/skills", contentHandler.Skills)
		api.GET("/experience", contentHandler.Experience)
		api.GET("/projects", contentHandler.Projects)
		api.GET("/projects/tags", contentHandler.ProjectTags)
		api.GET("/projects/:id", contentHandler.Project)
		api.GET("/projects/:id/repository", contentHandler.ProjectRepository)
		api.GET("/tech", contentHandler.Tech)
		api.GET("/testimonials", contentHandler.Testimonials)
		api.GET("/faqs", contentHandler.FAQs)
		api.GET("/hero/typed", heroHandler.Typed)
	}

	// Health and metrics
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.NoRoute(notFoundHandler.NotFound)
}
