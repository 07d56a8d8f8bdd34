package config

import (
	"errors"
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

	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Search  SearchConfig
	Dataset DatasetConfig
	Contact ContactConfig
	Exports ExportsConfig
	Notify  NotifyConfig
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

// SearchConfig tunes the search engine and its result cache.
type SearchConfig struct {
	PageSize     int
	SettleDelay  time.Duration
	CacheEnabled bool
	CacheTTL     time.Duration
}

// DatasetConfig controls the seeded in-memory roster.
type DatasetConfig struct {
	Seed int64
	Days int
}

// ContactConfig configures the outbound booking deep link.
type ContactConfig struct {
	WhatsAppBaseURL string
}

// ExportsConfig toggles the result export endpoints.
type ExportsConfig struct {
	Enabled bool
}

// NotifyConfig gates slot-availability notification requests.
type NotifyConfig struct {
	Enabled bool
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
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

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
		PageSize:     v.GetInt("SEARCH_PAGE_SIZE"),
		SettleDelay:  parseDuration(v.GetString("SEARCH_SETTLE_DELAY"), 200*time.Millisecond),
		CacheEnabled: v.GetBool("ENABLE_SEARCH_CACHE"),
		CacheTTL:     parseDuration(v.GetString("SEARCH_CACHE_TTL"), time.Minute),
	}

	cfg.Dataset = DatasetConfig{
		Seed: v.GetInt64("DATASET_SEED"),
		Days: v.GetInt("DATASET_DAYS"),
	}

	cfg.Contact = ContactConfig{
		WhatsAppBaseURL: v.GetString("CONTACT_WHATSAPP_BASE_URL"),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	cfg.Notify = NotifyConfig{
		Enabled: v.GetBool("ENABLE_NOTIFY_REQUESTS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEARCH_PAGE_SIZE", 5)
	v.SetDefault("SEARCH_SETTLE_DELAY", "200ms")
	v.SetDefault("ENABLE_SEARCH_CACHE", false)
	v.SetDefault("SEARCH_CACHE_TTL", "60s")

	v.SetDefault("DATASET_SEED", 1)
	v.SetDefault("DATASET_DAYS", 7)

	v.SetDefault("CONTACT_WHATSAPP_BASE_URL", "https://wa.me")

	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("ENABLE_NOTIFY_REQUESTS", true)
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
