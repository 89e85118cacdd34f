package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/tutor-finder/pkg/errors"
)

type subjectRepository interface {
	ListNames(ctx context.Context) ([]string, error)
}

// SubjectService lists subject names through the cache.
type SubjectService struct {
	repo     subjectRepository
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewSubjectService creates a new subject service.
func NewSubjectService(repo subjectRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cacheTTL time.Duration) *SubjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, cache: cache, metrics: metrics, logger: logger, cacheTTL: cacheTTL}
}

// ListNames returns subject names and whether they came from cache.
func (s *SubjectService) ListNames(ctx context.Context) ([]string, bool, error) {
	var cached []string
	if hit, err := s.cache.Get(ctx, CacheKey(subjectListNamespace, nil), &cached); err == nil && hit {
		return cached, true, nil
	}

	start := time.Now()
	names, err := s.repo.ListNames(ctx)
	s.metrics.ObserveDBQuery("subjects.list", time.Since(start))
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}

	_ = s.cache.Set(ctx, CacheKey(subjectListNamespace, nil), names, s.cacheTTL)
	return names, false, nil
}
