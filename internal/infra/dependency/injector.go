// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/salon-pulse/backend/config"
	"github.com/salon-pulse/backend/internal/application/adapter"
	"github.com/salon-pulse/backend/internal/application/usecase/digest"
	"github.com/salon-pulse/backend/internal/application/usecase/forecast"
	"github.com/salon-pulse/backend/internal/application/usecase/preference"
	"github.com/salon-pulse/backend/internal/application/usecase/trends"
	"github.com/salon-pulse/backend/internal/infra/server/router"
	"github.com/salon-pulse/backend/internal/integration/adapters"
	"github.com/salon-pulse/backend/internal/integration/cache"
	"github.com/salon-pulse/backend/internal/integration/email"
	"github.com/salon-pulse/backend/internal/integration/email/templates"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/controller"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/middleware"
	"github.com/salon-pulse/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	DigestWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client is optional; a nil client disables comparison memoization.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	salesRepo := persistence.NewSalesRepository(db)
	forecastRepo := persistence.NewForecastRepository(db)
	preferenceRepo := persistence.NewPreferenceRepository(db)
	digestQueueRepo := persistence.NewDigestQueueRepository(db)

	// Create adapters/services
	var comparisonCache adapter.ComparisonCache
	if redisClient != nil {
		comparisonCache = cache.NewRedisComparisonCache(redisClient)
	}
	insightService := adapters.NewGeminiInsightService(cfg.Gemini.APIKey)

	// Create digest email pipeline
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	digestService := email.NewService(digestQueueRepo, cfg.Email.AppBaseURL)
	digestSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	digestWorker := email.NewWorker(digestQueueRepo, digestSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create use cases
	getTrendComparisonUseCase := trends.NewGetTrendComparisonUseCase(salesRepo, comparisonCache)
	getForecastUseCase := forecast.NewGetForecastUseCase(forecastRepo, insightService)
	getPreferencesUseCase := preference.NewGetPreferencesUseCase(preferenceRepo)
	updatePreferencesUseCase := preference.NewUpdatePreferencesUseCase(preferenceRepo)
	queueWeeklyDigestUseCase := digest.NewQueueWeeklyDigestUseCase(getTrendComparisonUseCase, digestService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	trendsController := controller.NewTrendsController(getTrendComparisonUseCase)
	forecastController := controller.NewForecastController(getForecastUseCase)
	preferenceController := controller.NewPreferenceController(getPreferencesUseCase, updatePreferencesUseCase)
	digestController := controller.NewDigestController(queueWeeklyDigestUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var forecastRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		forecastRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		forecastRateLimiter = middleware.NewRateLimiterWithConfig(30, 1*time.Minute)
	}

	// Create router
	r := router.NewRouter(healthController, trendsController, forecastController, preferenceController, digestController, forecastRateLimiter)

	if !insightService.IsAvailable() {
		slog.Info("Gemini API key not configured, forecast insights fall back to stored values")
	}

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		DigestWorker: digestWorker,
	}, nil
}
