package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-finder/internal/repository"
	"github.com/noah-isme/tutor-finder/internal/seed"
	"github.com/noah-isme/tutor-finder/internal/service"
	"github.com/noah-isme/tutor-finder/pkg/cache"
	"github.com/noah-isme/tutor-finder/pkg/config"
	"github.com/noah-isme/tutor-finder/pkg/database"
	"github.com/noah-isme/tutor-finder/pkg/logger"
)

func main() {
	var (
		count    int
		reset    bool
		seedFlag int64
	)
	flag.IntVar(&count, "tutors", 60, "number of fake tutors to insert")
	flag.BoolVar(&reset, "reset", false, "remove the existing catalog first")
	flag.Int64Var(&seedFlag, "seed", 0, "random seed (0 picks one)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	writer := repository.NewCatalogWriter(db)
	if err := writer.ApplySchema(ctx); err != nil {
		logr.Fatal("failed to apply schema", zap.Error(err))
	}

	tutors := seed.NewGenerator(seedFlag).Tutors(count)
	if err := writer.Load(ctx, seed.Subjects, tutors, reset); err != nil {
		logr.Fatal("failed to seed catalog", zap.Error(err))
	}
	logr.Info("catalog seeded", zap.Int("tutors", len(tutors)), zap.Int("subjects", len(seed.Subjects)), zap.Bool("reset", reset))

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, cached searches were not invalidated", zap.Error(err))
		return
	}
	defer redisClient.Close()

	cacheSvc := service.NewCacheService(repository.NewCacheRepository(redisClient), nil, cfg.Search.CacheTTL, logr, true)
	for _, pattern := range []string{service.TutorCachePattern, service.SubjectCachePattern} {
		if err := cacheSvc.Invalidate(ctx, pattern); err != nil {
			logr.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
