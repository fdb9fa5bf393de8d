package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/edo-marketplace-admin/config"
	"github.com/oksasatya/edo-marketplace-admin/internal/container"
	"github.com/oksasatya/edo-marketplace-admin/internal/infrastructure/elastic"
	"github.com/oksasatya/edo-marketplace-admin/internal/interface/middleware"
	"github.com/oksasatya/edo-marketplace-admin/internal/router"
	"github.com/oksasatya/edo-marketplace-admin/pkg/apiclient"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
	"github.com/oksasatya/edo-marketplace-admin/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	container.SetConfig(cfg)
	container.SetLogger(logger)

	// Redis (rate limit + metrics cache); the server runs without it
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancelPing := context.WithTimeout(ctx, 2*time.Second)
	if err := helpers.PingRedis(pingCtx, rdb); err != nil {
		logger.WithError(err).Warn("redis unavailable; rate limiting and metrics cache disabled")
		_ = rdb.Close()
	} else {
		container.SetRedis(rdb)
		defer func() { _ = rdb.Close() }()
	}
	cancelPing()

	// Marketplace REST API
	if cfg.APIBaseURL != "" {
		signer := helpers.NewTokenSigner(cfg.APITokenSecret, cfg.APITokenTTL)
		container.SetAPIClient(apiclient.New(cfg.APIBaseURL, cfg.APITimeout, signer))
	} else {
		logger.Warn("API_BASE_URL not set; every view serves mock data")
	}

	// GCS export archive
	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.WithError(err).Warn("gcs unavailable; exports are not archived")
		} else {
			defer func() { _ = gcsClient.Close() }()
			container.SetArchiver(helpers.NewGCSArchiver(gcsClient, cfg.GCSBucket))
		}
	}

	// Elasticsearch activity index
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			logger.WithError(err).Warn("elasticsearch unavailable; activity kept in memory")
		} else {
			container.SetES(es)
			container.SetActivity(elastic.NewActivityIndex(es, cfg.ESActivityIndex))
		}
	}

	// RabbitMQ email jobs
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; invitations and announcements disabled")
		} else {
			defer pub.Close()
			container.SetRabbitPub(pub)
		}
	}

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	// CORS
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader, "X-Export-URL"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	reg.Use(middleware.RateLimit(container.GetRedis(), cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(), nil))
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.APITimeout+5*time.Second)
	router.InitModules(loadCtx, reg)
	cancelLoad()
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
