package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-finder/internal/models"
	appErrors "github.com/noah-isme/tutor-finder/pkg/errors"
)

type tutorRepository interface {
	Search(ctx context.Context, filter models.TutorSearchFilter) ([]models.Tutor, error)
}

// SearchTutorsRequest carries the catalog search keys.
type SearchTutorsRequest struct {
	Subject  string `form:"subject" validate:"max=100"`
	Location string `form:"location" validate:"max=200"`
}

// TutorServiceConfig tunes search behaviour.
type TutorServiceConfig struct {
	CacheTTL    time.Duration
	ResultLimit int
}

// TutorService serves catalog searches, reading through the cache.
type TutorService struct {
	repo      tutorRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       TutorServiceConfig
}

// NewTutorService constructs a TutorService.
func NewTutorService(repo tutorRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg TutorServiceConfig) *TutorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = 100
	}
	return &TutorService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger, cfg: cfg}
}

// Search returns tutors for the subject/location pair and whether the result
// came from cache.
func (s *TutorService) Search(ctx context.Context, req SearchTutorsRequest) ([]models.Tutor, bool, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Location = strings.TrimSpace(req.Location)
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid search parameters")
	}

	key := searchCacheKey(req.Subject, req.Location)
	var cached []models.Tutor
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	start := time.Now()
	tutors, err := s.repo.Search(ctx, models.TutorSearchFilter{
		Subject:  req.Subject,
		Location: req.Location,
		Limit:    s.cfg.ResultLimit,
	})
	s.metrics.ObserveDBQuery("tutors.search", time.Since(start))
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search tutors")
	}

	_ = s.cache.Set(ctx, key, tutors, s.cfg.CacheTTL)
	return tutors, false, nil
}

// searchCacheKey is case-insensitive like the search itself.
func searchCacheKey(subject, location string) string {
	return CacheKey(tutorSearchNamespace, url.Values{
		"subject":  {strings.ToLower(subject)},
		"location": {strings.ToLower(location)},
	})
}
