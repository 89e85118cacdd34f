package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/tutor-finder/api/swagger"
	"github.com/noah-isme/tutor-finder/internal/client"
	"github.com/noah-isme/tutor-finder/internal/finder"
	"github.com/noah-isme/tutor-finder/internal/handler"
	"github.com/noah-isme/tutor-finder/internal/repository"
	"github.com/noah-isme/tutor-finder/internal/routes"
	"github.com/noah-isme/tutor-finder/internal/service"
	"github.com/noah-isme/tutor-finder/internal/view"
	"github.com/noah-isme/tutor-finder/pkg/cache"
	"github.com/noah-isme/tutor-finder/pkg/config"
	"github.com/noah-isme/tutor-finder/pkg/database"
	"github.com/noah-isme/tutor-finder/pkg/logger"
)

// @title Tutor Finder API
// @version 0.1.0
// @description Tutor catalog search and the find-tutors page
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewPostgres(startCtx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Search.CacheEnabled {
		redisClient, err = cache.NewRedis(startCtx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, search cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	metrics := service.NewMetricsService()

	tutorRepo := repository.NewTutorRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Search.CacheTTL, logr, cfg.Search.CacheEnabled && redisClient != nil)
	tutorSvc := service.NewTutorService(tutorRepo, cacheSvc, metrics, validator.New(), logr, service.TutorServiceConfig{
		CacheTTL:    cfg.Search.CacheTTL,
		ResultLimit: cfg.Search.ResultLimit,
	})
	subjectSvc := service.NewSubjectService(subjectRepo, cacheSvc, metrics, logr, cfg.Search.SubjectsCacheTTL)

	catalog := client.NewCatalogClient(cfg.Catalog.BaseURL, cfg.APIPrefix, cfg.Catalog.Timeout, logr)
	findSvc := service.NewFindTutorsService(catalog, metrics, logr, service.FindTutorsConfig{
		SubjectLimit: cfg.Finder.SubjectLimit,
		Pricing:      finder.NewPricing(cfg.Pricing.HoursPerMonth, cfg.Pricing.ConversionRate),
	})

	checks := map[string]handler.Pinger{"postgres": tutorRepo}
	if redisClient != nil {
		checks["redis"] = cacheRepo
	}

	router, err := routes.NewRouter(cfg, logr, metrics, routes.Handlers{
		Tutors:     handler.NewTutorHandler(tutorSvc),
		Subjects:   handler.NewSubjectHandler(subjectSvc),
		FindTutors: handler.NewFindTutorsHandler(findSvc),
		Metrics:    handler.NewMetricsHandler(metrics, checks, logr),
	})
	if err != nil {
		logr.Fatal("failed to build router", zap.Error(err))
	}
	templates, err := view.Templates()
	if err != nil {
		logr.Fatal("failed to parse templates", zap.Error(err))
	}
	router.SetHTMLTemplate(templates)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "catalog", cfg.Catalog.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("server shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
}
