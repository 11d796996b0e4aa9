package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Session backends.
const (
	SessionBackendCookie = "cookie"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Env  string
	Port int

	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Log     LogConfig
	UI      UIConfig
}

// APIConfig points the panel at the upstream student API.
type APIConfig struct {
	BaseURL               string
	ProfileEndpoints      []string
	ProfileAttemptTimeout time.Duration
}

// SessionConfig selects and tunes the session token store.
type SessionConfig struct {
	Backend    string
	CookieName string
	Secret     string
	TTL        time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

// UIConfig tunes presentation behaviour.
type UIConfig struct {
	PageSize          int
	EditRedirectDelay time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// A missing .env is fine: defaults plus the process environment apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.API = APIConfig{
		BaseURL:               strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		ProfileEndpoints:      splitAndTrim(v.GetString("PROFILE_ENDPOINTS")),
		ProfileAttemptTimeout: parseDuration(v.GetString("PROFILE_ATTEMPT_TIMEOUT"), 3*time.Second),
	}

	cfg.Session = SessionConfig{
		Backend:    v.GetString("SESSION_BACKEND"),
		CookieName: v.GetString("SESSION_COOKIE_NAME"),
		Secret:     v.GetString("SESSION_SECRET"),
		TTL:        parseDuration(v.GetString("SESSION_TTL"), 30*24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.UI = UIConfig{
		PageSize:          v.GetInt("PAGE_SIZE"),
		EditRedirectDelay: parseDuration(v.GetString("EDIT_REDIRECT_DELAY"), 1500*time.Millisecond),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("API_BASE_URL", "http://localhost:3000/api")
	v.SetDefault("PROFILE_ENDPOINTS", "/auth/me,/user,/teacher,/users/me")
	v.SetDefault("PROFILE_ATTEMPT_TIMEOUT", "3s")

	v.SetDefault("SESSION_BACKEND", SessionBackendCookie)
	v.SetDefault("SESSION_COOKIE_NAME", "sap_session")
	v.SetDefault("SESSION_SECRET", "dev_secret")
	v.SetDefault("SESSION_TTL", "720h")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("EDIT_REDIRECT_DELAY", "1500ms")
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
