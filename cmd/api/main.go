package main

// @title TVS Motors Leads API
// @version 1.0
// @description Lead capture backend for vehicle enquiries: multi-step booking wizard, validation, and notification fan-out.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KrishangSharma/tvs-motors-sub000/config"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/api/handlers"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/cache"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/captcha"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/email"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/intake"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/jobs"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/metrics"
	custommiddleware "github.com/KrishangSharma/tvs-motors-sub000/pkg/middleware"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/notification"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/store"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/submission"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/whatsapp"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/wizard"
)

func main() {
	// Load .env for local development; in production the environment is real
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize Redis cache. The API stays up without Redis; the catalog
	// falls back to in-process data and leads are stored in memory.
	var redisClient *cache.Client
	var leadStore store.Store
	if client, err := cache.NewClient(cfg.RedisURL); err != nil {
		log.Printf("⚠️  Redis unavailable, using in-memory lead store: %v", err)
		leadStore = store.NewMemoryStore()
	} else {
		redisClient = client
		defer redisClient.Close()
		leadStore = store.NewRedisStore(redisClient)
	}

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize notification channels
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey)
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppToken, cfg.WhatsAppLanguage)
	dispatcher := notification.NewDispatcher(emailService, whatsappClient, cfg.AdminEmail, cfg.AdminPhone, appLogger, prometheusMetrics)

	// Initialize domain services
	catalogService := catalog.NewService(redisClient, appLogger)
	intakeService := intake.NewService(leadStore, dispatcher, appLogger, prometheusMetrics)
	sessionManager := wizard.NewManager(time.Duration(cfg.WizardSessionTTLMinutes) * time.Minute)
	wizardEngine := wizard.NewEngine(catalogService, appLogger)
	captchaVerifier := captcha.New(cfg.CaptchaVerifyURL)

	// Submissions either go to a remote processing endpoint or straight
	// into the in-process intake service.
	var processingClient submission.ProcessingClient
	if cfg.ProcessingBaseURL != "" {
		processingClient = submission.NewHTTPProcessingClient(cfg.ProcessingBaseURL)
		log.Printf("✅ Remote lead processing configured: %s", cfg.ProcessingBaseURL)
	} else {
		processingClient = submission.NewLocalClient(intakeService)
		log.Printf("ℹ️  Lead processing runs in-process (no PROCESSING_BASE_URL)")
	}
	coordinator := submission.NewCoordinator(sessionManager, wizardEngine, captchaVerifier, processingClient, catalogService, appLogger, prometheusMetrics)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	submitRateLimiter := custommiddleware.NewRateLimiter(cfg.SubmitRateLimitPerMinute, cfg.SubmitRateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "TVS Motors Leads API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		cacheStatus := "up"
		if redisClient != nil {
			if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
				cacheStatus = "down"
			}
		} else {
			cacheStatus = "disabled"
		}

		status := http.StatusOK
		if cacheStatus == "down" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, map[string]any{
			"status":   "healthy",
			"cache":    cacheStatus,
			"sessions": sessionManager.Count(),
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize cron manager for session cleanup and stats
	cronManager := jobs.NewCronManager(sessionManager, leadStore, prometheusMetrics, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(intakeService)
	wizardHandler := handlers.NewWizardHandler(sessionManager, wizardEngine, coordinator, catalogService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	captchaHandler := handlers.NewCaptchaHandler(captchaVerifier, prometheusMetrics)

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Catalog (public)
	v1.GET("/vehicles", catalogHandler.Vehicles)
	v1.GET("/vehicles/:slug/variants", catalogHandler.Variants)
	v1.GET("/dealers", catalogHandler.Dealers)

	// Captcha verification
	v1.POST("/verify-captcha", captchaHandler.Verify)

	// Wizard sessions
	v1.POST("/wizard", wizardHandler.Start)
	v1.GET("/wizard/:id", wizardHandler.Get)
	v1.POST("/wizard/:id/events", wizardHandler.Events)
	v1.POST("/wizard/:id/locate", wizardHandler.Locate)
	v1.POST("/wizard/:id/submit", wizardHandler.Submit, submitRateLimiter.RateLimitMiddleware())

	// Direct lead processing (stricter limits, it triggers notifications)
	v1.POST("/leads/:kind", leadHandler.Create, submitRateLimiter.RateLimitMiddleware())

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 TVS Motors Leads API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🌍 CORS: %s", strings.Join(cfg.CORSAllowedOrigins, ", "))
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), submissions %d req/min (burst: %d)",
		cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst, cfg.SubmitRateLimitPerMinute, cfg.SubmitRateLimitBurst)
	log.Printf("⏰ Cron jobs: Every 5 min (purge sessions), Daily 4AM (stats)")
	log.Printf("📧 Admin notifications: %s / %s", cfg.AdminEmail, cfg.AdminPhone)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
