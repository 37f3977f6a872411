package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// It is constructed once at startup and treated as immutable afterwards;
// business logic never reads the ambient environment directly.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration

	// Redis (rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string
	TokenTTL  time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Migrations
	MigrationsDir string

	// Auth endpoint throttling
	AuthRateMax    int
	AuthRateWindow time.Duration

	// Mailgun
	MailgunDomain string
	MailgunAPIKey string
	MailgunSender string

	// RabbitMQ
	RabbitMQURL        string
	RabbitMQEmailQueue string

	// Email sending toggle
	MailSendEnabled bool

	// Elasticsearch (optional mood-log search)
	ElasticsearchAddrs string // comma-separated
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESMoodIndex        string

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

const minSecretLength = 16

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "moodjournal"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "moodjournal"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		JWTSecret: getenv("JWT_SECRET", ""),
		TokenTTL:  getdur("TOKEN_TTL", 168*time.Hour), // 7 days

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		AuthRateMax:    getint("AUTH_RATE_MAX", 20),
		AuthRateWindow: getdur("AUTH_RATE_WINDOW", 15*time.Minute),

		MailgunDomain: getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey: getenv("MAILGUN_API_KEY", ""),
		MailgunSender: getenv("MAILGUN_SENDER", ""),

		RabbitMQURL:        getenv("RABBITMQ_URL", ""),
		RabbitMQEmailQueue: getenv("RABBITMQ_EMAIL_QUEUE", "emails"),

		MailSendEnabled: getbool("MAIL_SEND_ENABLED", false),

		ElasticsearchAddrs: getenv("ELASTICSEARCH_ADDRS", ""),
		ElasticsearchUser:  getenv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPass:  getenv("ELASTICSEARCH_PASSWORD", ""),
		ESMoodIndex:        getenv("ES_MOOD_INDEX", "mood_logs"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// Validate checks that required settings are present and well-formed.
// The process should exit immediately when this fails, instead of
// failing deep inside a DB call or a token sign on first use.
func (c *Config) Validate() error {
	var errs []string
	if len(c.JWTSecret) < minSecretLength {
		errs = append(errs, fmt.Sprintf("JWT_SECRET must be at least %d characters", minSecretLength))
	}
	if c.DBName == "" {
		errs = append(errs, "DB_NAME is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, "PORT must be numeric")
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, "TOKEN_TTL must be positive")
	}
	if c.AuthRateMax <= 0 || c.AuthRateWindow <= 0 {
		errs = append(errs, "AUTH_RATE_MAX and AUTH_RATE_WINDOW must be positive")
	}
	if len(errs) > 0 {
		return errors.New("config validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

// PostgresDSN returns a DSN compatible with pgx.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// CORSOrigins returns the allowed origins as a slice.
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// ESAddrs returns Elasticsearch addresses as a slice.
func (c *Config) ESAddrs() []string {
	return splitList(c.ElasticsearchAddrs)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
