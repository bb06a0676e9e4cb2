package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and passed by value to whatever needs it.
type Config struct {
	Port                string
	MongoURI            string
	DBName              string
	JWTSecret           string
	TokenTTL            time.Duration
	DBTimeout           time.Duration
	RequireAuthOnWrites bool
	ExposeErrorDetails  bool
	CORSAllowedOrigins  []string
	LogLevel            string
	AppEnv              string
	PublicBaseURL       string

	// TrustedProxies lists the proxy addresses or CIDRs whose X-Forwarded-For
	// is honoured. Empty means the socket peer is the client.
	TrustedProxies []string

	RedisAddr        string
	LoginRateLimit   int
	LoginRateWindow  time.Duration
	KafkaBrokers     []string
	KafkaReviewTopic string
	KafkaGroupID     string

	// KafkaPublishTimeout bounds each review event write made inside a request.
	KafkaPublishTimeout time.Duration

	// DotEnvErr is why .env was not merged, if it was not.
	DotEnvErr error
}

// Load reads the process environment, after merging a .env file when one is
// present in the working directory.
func Load() (Config, error) {
	dotEnvErr := godotenv.Load()

	cfg := Config{
		Port:                getEnvOrDefault("PORT", "5000"),
		MongoURI:            getEnvOrDefault("MONGO_URI", ""),
		DBName:              getEnvOrDefault("DB_NAME", "foodreview"),
		JWTSecret:           getEnvOrDefault("JWT_SECRET", ""),
		TokenTTL:            getDurationEnv("TOKEN_TTL_DAYS", 7, 24*time.Hour),
		DBTimeout:           getDurationEnv("DB_TIMEOUT_SECONDS", 5, time.Second),
		RequireAuthOnWrites: getBoolEnv("REQUIRE_AUTH_ON_WRITES", true),
		ExposeErrorDetails:  getBoolEnv("EXPOSE_ERROR_DETAILS", false),
		CORSAllowedOrigins:  getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:      getListEnv("TRUSTED_PROXIES", nil),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		AppEnv:              getEnvOrDefault("APP_ENV", "production"),
		PublicBaseURL:       strings.TrimRight(getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:5000"), "/"),

		RedisAddr:        getEnvOrDefault("REDIS_ADDR", ""),
		LoginRateLimit:   getIntEnv("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow:  getDurationEnv("LOGIN_RATE_WINDOW_SECONDS", 60, time.Second),
		KafkaBrokers:     getListEnv("KAFKA_BROKERS", nil),
		KafkaReviewTopic: getEnvOrDefault("KAFKA_REVIEW_TOPIC", "reviews"),
		KafkaGroupID:     getEnvOrDefault("KAFKA_GROUP_ID", "food-rating-aggregator"),

		KafkaPublishTimeout: getDurationEnv("KAFKA_PUBLISH_TIMEOUT_MS", 500, time.Millisecond),

		DotEnvErr: dotEnvErr,
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: required env not set: %s", strings.Join(missing, ", "))
	}
	if c.LoginRateLimit < 1 {
		return errors.New("config: LOGIN_RATE_LIMIT must be positive")
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("config: TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c Config) RateLimitEnabled() bool {
	return c.RedisAddr != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	out := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
