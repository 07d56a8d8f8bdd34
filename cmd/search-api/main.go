package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/courtside-sg/courtside-api/api/swagger"
	"github.com/courtside-sg/courtside-api/internal/dataset"
	"github.com/courtside-sg/courtside-api/internal/handler"
	"github.com/courtside-sg/courtside-api/internal/middleware"
	"github.com/courtside-sg/courtside-api/internal/repository"
	"github.com/courtside-sg/courtside-api/internal/search"
	"github.com/courtside-sg/courtside-api/internal/service"
	"github.com/courtside-sg/courtside-api/pkg/cache"
	"github.com/courtside-sg/courtside-api/pkg/config"
	"github.com/courtside-sg/courtside-api/pkg/contact"
	"github.com/courtside-sg/courtside-api/pkg/jobs"
	"github.com/courtside-sg/courtside-api/pkg/logger"
	corsmiddleware "github.com/courtside-sg/courtside-api/pkg/middleware/cors"
	reqidmiddleware "github.com/courtside-sg/courtside-api/pkg/middleware/requestid"
)

// @title Courtside API
// @version 1.0.0
// @description Search and booking directory for tennis instructors in Singapore
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	roster, err := dataset.Load(cfg.Dataset, time.Now().UTC(), logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to seed roster", "error", err)
	}
	instructorRepo := repository.NewInstructorRepository()
	instructorRepo.Replace(roster)
	logr.Sugar().Infow("roster seeded", "instructors", len(roster), "seed", cfg.Dataset.Seed)

	metricsSvc := service.NewMetricsService()

	var redisClient *redis.Client
	var cacheRepo service.CacheRepository
	if cfg.Search.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without search cache", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient)
			defer redisClient.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Search.CacheTTL, logr, cfg.Search.CacheEnabled && cacheRepo != nil)
	// Cached result sets from a previous process predate this roster seed.
	if err := cacheSvc.Invalidate(context.Background(), "search:results:*"); err != nil {
		logr.Sugar().Warnw("failed to invalidate stale search cache", "error", err)
	}

	validate := validator.New()
	coordinator := search.NewCoordinator(cfg.Search.SettleDelay, logr)
	paginator := search.NewPaginator(cfg.Search.PageSize)
	links := contact.NewLinkBuilder(cfg.Contact.WhatsAppBaseURL)

	searchSvc := service.NewSearchService(instructorRepo, coordinator, paginator, cacheSvc, metricsSvc, links, validate, logr, cfg.Search.CacheTTL)
	instructorSvc := service.NewInstructorService(instructorRepo, logr)
	notifySvc := service.NewNotifyService(instructorRepo, validate, logr, cfg.Notify.Enabled)
	exportSvc := service.NewExportService(searchSvc, logr, cfg.Exports.Enabled)

	notifyQueue := jobs.NewQueue("notify-confirmations", notifySvc.DeliverConfirmation, jobs.QueueConfig{
		Workers: 2,
		Logger:  logr,
	})
	notifyQueue.Start(context.Background())
	defer notifyQueue.Stop()
	notifySvc.WithQueue(notifyQueue)

	searchHandler := handler.NewSearchHandler(searchSvc, exportSvc)
	instructorHandler := handler.NewInstructorHandler(instructorSvc)
	notifyHandler := handler.NewNotifyHandler(notifySvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/healthz", metricsHandler.Health)
	r.GET("/readyz", readiness(redisClient, cfg.Search.CacheEnabled))
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/search", searchHandler.Search)
		api.GET("/search/filters", searchHandler.Filters)
		api.GET("/search/dates", searchHandler.Dates)
		api.GET("/search/export", searchHandler.Export)
		api.GET("/instructors", instructorHandler.List)
		api.GET("/instructors/:id", instructorHandler.Get)
		api.POST("/notify-requests", notifyHandler.Create)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		r.GET("/debug/metrics", metricsHandler.Snapshot)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// readiness reports not-ready only when a configured cache backend is down.
func readiness(redisClient *redis.Client, cacheEnabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheEnabled && redisClient != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cache": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
