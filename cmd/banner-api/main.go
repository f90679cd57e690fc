package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/banner-admin-api/api/swagger"
	"github.com/noah-isme/banner-admin-api/internal/handler"
	"github.com/noah-isme/banner-admin-api/internal/middleware"
	"github.com/noah-isme/banner-admin-api/internal/repository"
	"github.com/noah-isme/banner-admin-api/internal/service"
	"github.com/noah-isme/banner-admin-api/pkg/cache"
	"github.com/noah-isme/banner-admin-api/pkg/config"
	"github.com/noah-isme/banner-admin-api/pkg/database"
	"github.com/noah-isme/banner-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/banner-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/banner-admin-api/pkg/middleware/requestid"
)

// @title Banner Admin API
// @version 1.0.0
// @description Announcement banner management and storefront resolve service
// @BasePath /
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	var resolveCache service.ResolveCache
	if cfg.Storefront.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
		resolveCache = service.NewRedisResolveCache(redisClient)
	}

	metricsSvc := service.NewMetricsService()

	announcementRepo := repository.NewAnnouncementRepository(db)
	announcementSvc := service.NewAnnouncementService(announcementRepo, resolveCache, cfg.Storefront.CacheTTL, metricsSvc, nil, logr)

	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)
	storefrontHandler := handler.NewStorefrontHandler(announcementSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := r.Group(cfg.APIPrefix)
	admin.Use(middleware.ShopSession(cfg.Session.Secret))
	{
		admin.POST("/announcements", announcementHandler.Create)
		admin.GET("/announcements", announcementHandler.List)
		admin.GET("/announcements/:id", announcementHandler.Get)
		admin.PATCH("/announcements/:id", announcementHandler.Update)
		admin.DELETE("/announcements/:id", announcementHandler.Delete)
		admin.PATCH("/announcements/:id/status", announcementHandler.SetActive)
		admin.POST("/announcements/validate", announcementHandler.ValidateEditor)
		admin.POST("/announcements/editor", announcementHandler.PublishEditor)
	}

	storefront := r.Group("/storefront")
	storefront.Use(middleware.WithResponseMeta())
	{
		storefront.GET("/announcements", storefrontHandler.Resolve)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
