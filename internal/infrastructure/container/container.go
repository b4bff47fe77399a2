package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/config"
	"github.com/harunmuya/gs-app/internal/delivery/http"
	"github.com/harunmuya/gs-app/internal/delivery/http/handler"
	"github.com/harunmuya/gs-app/internal/delivery/http/middleware"
	"github.com/harunmuya/gs-app/internal/extractor"
	"github.com/harunmuya/gs-app/internal/infrastructure/cache"
	"github.com/harunmuya/gs-app/internal/infrastructure/database"
	"github.com/harunmuya/gs-app/internal/infrastructure/gemini"
	"github.com/harunmuya/gs-app/internal/infrastructure/scheduler"
	"github.com/harunmuya/gs-app/internal/infrastructure/server"
	"github.com/harunmuya/gs-app/internal/infrastructure/wordpress"
	"github.com/harunmuya/gs-app/internal/matching"
	"github.com/harunmuya/gs-app/internal/repository/postgres"
	"github.com/harunmuya/gs-app/internal/usecase/activity"
	"github.com/harunmuya/gs-app/internal/usecase/auth"
	"github.com/harunmuya/gs-app/internal/usecase/comment"
	"github.com/harunmuya/gs-app/internal/usecase/feed"
	"github.com/harunmuya/gs-app/internal/usecase/profile"
	"github.com/harunmuya/gs-app/internal/usecase/settings"
	"github.com/harunmuya/gs-app/internal/usecase/swipe"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	DB        *sqlx.DB
	Redis     *redis.Client
	Server    *server.Server
	Gemini    *gemini.GeminiClient
	Scheduler *scheduler.Service
}

// redisPinger adapts the redis client to handler.Pinger.
type redisPinger struct{ client *redis.Client }

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Resolved before any connection opens so a bad policy leaks nothing.
	scorer := matching.NewScorer(matching.DefaultConfig(), nil)
	policy, err := matching.NewPolicy(cfg.Matching.Policy, nil)
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	checks := map[string]handler.Pinger{"postgres": db}

	// Redis is optional; without it pages are cached in process.
	var redisClient *redis.Client
	var pageCache cache.PageCache
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		pageCache = cache.NewRedis(redisClient)
		checks["redis"] = redisPinger{client: redisClient}
	} else {
		pageCache = cache.NewMemory(cfg.Cache.Size)
	}

	// Gemini is optional; matches simply come without icebreakers.
	var icebreakers swipe.IcebreakerGenerator
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logrus.WithError(err).Warn("Failed to initialize Gemini client, icebreakers disabled")
		} else {
			icebreakers = geminiClient
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	savedRepo := postgres.NewSavedRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	locationRepo := postgres.NewLocationRepository(db)

	wp := wordpress.NewClient(cfg.WordPress.APIURL, cfg.WordPress.Timeout)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.Expiry())
	profileUseCase := profile.NewProfileUseCase(wp, extractor.New(), pageCache, cfg.Cache.TTL, activityRepo)
	feedUseCase := feed.NewFeedUseCase(profileUseCase, scorer, swipeRepo, locationRepo, settingsRepo)
	swipeUseCase := swipe.NewSwipeUseCase(
		profileUseCase,
		scorer,
		policy,
		swipeRepo,
		matchRepo,
		savedRepo,
		activityRepo,
		locationRepo,
		icebreakers,
	)
	activityUseCase := activity.NewActivityUseCase(activityRepo)
	settingsUseCase := settings.NewSettingsUseCase(settingsRepo, locationRepo)
	commentUseCase := comment.NewCommentUseCase(wp)

	router := http.NewRouter(
		handler.NewAuthHandler(authUseCase),
		handler.NewProfileHandler(profileUseCase),
		handler.NewCommentHandler(commentUseCase),
		handler.NewFeedHandler(feedUseCase),
		handler.NewSwipeHandler(swipeUseCase),
		handler.NewActivityHandler(activityUseCase),
		handler.NewSettingsHandler(settingsUseCase),
		handler.NewHealthHandler(checks),
		middleware.NewAuthMiddleware(authUseCase),
	)

	srv := server.NewServer(&cfg.Server, router.Setup())

	return &Container{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Server:    srv,
		Gemini:    geminiClient,
		Scheduler: scheduler.NewService(profileUseCase, cfg.Cache.WarmSchedule, cfg.Cache.WarmPages),
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logrus.WithError(err).Error("Error closing Redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
