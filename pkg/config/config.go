package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	// TrustedProxies lists the proxies whose forwarding headers are honoured
	// when resolving the client IP. Empty trusts none.
	TrustedProxies []string

	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Search    SearchConfig
	Catalog   CatalogConfig
	Pricing   PricingConfig
	Finder    FinderConfig
	RateLimit RateLimitConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SearchConfig tunes the catalog search endpoints and their cache.
type SearchConfig struct {
	CacheEnabled     bool
	CacheTTL         time.Duration
	SubjectsCacheTTL time.Duration
	ResultLimit      int
}

// CatalogConfig points the find-tutors page at the catalog API it consumes.
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PricingConfig holds the assumptions behind the displayed monthly rate.
type PricingConfig struct {
	HoursPerMonth  float64
	ConversionRate float64
}

// FinderConfig governs the find-tutors page.
type FinderConfig struct {
	SubjectLimit int
}

// RateLimitConfig configures the per-client limiter on API routes.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = normalizePrefix(v.GetString("API_PREFIX"))
	cfg.TrustedProxies = splitAndTrim(v.GetString("TRUSTED_PROXIES"))

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Search = SearchConfig{
		CacheEnabled:     v.GetBool("ENABLE_SEARCH_CACHE"),
		CacheTTL:         parseDuration(v.GetString("SEARCH_CACHE_TTL"), 2*time.Minute),
		SubjectsCacheTTL: parseDuration(v.GetString("SUBJECTS_CACHE_TTL"), 30*time.Minute),
		ResultLimit:      v.GetInt("SEARCH_RESULT_LIMIT"),
	}

	baseURL := strings.TrimRight(strings.TrimSpace(v.GetString("CATALOG_BASE_URL")), "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	cfg.Catalog = CatalogConfig{
		BaseURL: baseURL,
		Timeout: parseDuration(v.GetString("CATALOG_TIMEOUT"), 10*time.Second),
	}

	cfg.Pricing = PricingConfig{
		HoursPerMonth:  v.GetFloat64("PRICING_HOURS_PER_MONTH"),
		ConversionRate: v.GetFloat64("PRICING_CONVERSION_RATE"),
	}

	cfg.Finder = FinderConfig{
		SubjectLimit: v.GetInt("SUBJECT_FILTER_LIMIT"),
	}

	cfg.RateLimit = RateLimitConfig{
		Enabled:           v.GetBool("ENABLE_RATE_LIMIT"),
		RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
		Burst:             v.GetInt("RATE_LIMIT_BURST"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("TRUSTED_PROXIES", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "tutor_finder")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_SEARCH_CACHE", true)
	v.SetDefault("SEARCH_CACHE_TTL", "2m")
	v.SetDefault("SUBJECTS_CACHE_TTL", "30m")
	v.SetDefault("SEARCH_RESULT_LIMIT", 100)

	v.SetDefault("CATALOG_BASE_URL", "")
	v.SetDefault("CATALOG_TIMEOUT", "10s")

	v.SetDefault("PRICING_HOURS_PER_MONTH", 20)
	v.SetDefault("PRICING_CONVERSION_RATE", 80)
	v.SetDefault("SUBJECT_FILTER_LIMIT", 8)

	v.SetDefault("ENABLE_RATE_LIMIT", true)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}

// normalizePrefix returns prefix with one leading slash and no trailing slash.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
