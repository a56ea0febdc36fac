// internal/pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// ErrMissingRequiredConfig is wrapped by validators when a required value is absent
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Database
	Database DatabaseConfig

	// Redis connection shared by the cache store and asynq
	Redis RedisConfig

	// Cache expiry tiers
	Cache CacheConfig

	// BigBlueButton server
	BBB BBBConfig

	// Asynq
	Asynq AsynqConfig

	// AWS
	AWS AWSConfig

	// Security
	Security SecurityConfig

	// Server
	Server ServerConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	// LogSampleRate keeps this share of debug/info records; 0 or 1 keeps all
	LogSampleRate float64
	LogFiles      []string
	Debug         bool
	APIBaseURL    string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host               string `required:"true"`
	Port               string
	User               string
	Password           string
	Name               string `required:"true"`
	SSLMode            string
	MaxConnections     int32
	MinConnections     int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	ConnectTimeout     time.Duration
	StatementCacheMode string
	EnableQueryLogging bool
	AutoMigrate        bool
}

// RedisConfig holds Redis configuration. URL, when set, wins over the
// host/port/password/db fields.
type RedisConfig struct {
	URL             string
	Host            string
	Port            string
	Password        string
	DB              int
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	ConnectAttempts int
	ConnectBackoff  time.Duration
	OpTimeout       time.Duration
}

// CacheConfig holds the read-through cache settings
type CacheConfig struct {
	Enabled    bool
	TTLShort   time.Duration
	TTLBBB     time.Duration
	TTLRunning time.Duration
	TTLMedium  time.Duration
	TTLLong    time.Duration
}

// BBBConfig holds the BigBlueButton API coordinates
type BBBConfig struct {
	ServerBaseURL   string `required:"true"`
	Secret          string
	SecretName      string
	RequestTimeout  time.Duration
	MeetingEndedURL string
	Welcome         string
	Record          bool
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	Concurrency     int
	Queues          map[string]int // queue name -> priority
	StrictPriority  bool
	RetryMax        int
	ShutdownTimeout time.Duration
	SyncInterval    string
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region                string
	SecretsManagerEnabled bool
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimitRequests int
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	SecureHeaders     bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host              string
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
	MaxHeaderBytes    int
	GracefulTimeout   time.Duration
	EnableHealthCheck bool
	TLSEnabled        bool
	TLSCertFile       string
	TLSKeyFile        string
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	setDefaults()

	cfg := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", viper.GetString("app.name")),
			Environment:   env,
			Version:       getEnv("APP_VERSION", "dev"),
			LogLevel:      getEnv("LOG_LEVEL", viper.GetString("log.level")),
			LogFormat:     getEnv("LOG_FORMAT", viper.GetString("log.format")),
			LogSampleRate: getFloatEnv("LOG_SAMPLE_RATE", 0),
			LogFiles:      getSliceEnv("LOG_FILES", nil),
			Debug:         getBoolEnv("APP_DEBUG", env == "development"),
			APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8000"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "spoutbreeze"),
			Password:           getEnv("DB_PASSWORD", "spoutbreeze_dev"),
			Name:               getEnv("DB_NAME", "spoutbreeze"),
			SSLMode:            getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:     int32(getIntEnv("DB_MAX_CONNECTIONS", 25)),
			MinConnections:     int32(getIntEnv("DB_MIN_CONNECTIONS", 5)),
			MaxConnLifetime:    getDurationEnv("DB_CONNECTION_LIFETIME", time.Hour),
			MaxConnIdleTime:    getDurationEnv("DB_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod:  getDurationEnv("DB_HEALTH_CHECK_PERIOD", time.Minute),
			ConnectTimeout:     getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
			StatementCacheMode: getEnv("DB_STATEMENT_CACHE_MODE", "describe"),
			EnableQueryLogging: getBoolEnv("DB_QUERY_LOGGING", env == "development"),
			AutoMigrate:        getBoolEnv("DB_AUTO_MIGRATE", env != "production"),
		},
		Redis: RedisConfig{
			URL:             getEnv("REDIS_URL", ""),
			Host:            getEnv("REDIS_HOST", "localhost"),
			Port:            getEnv("REDIS_PORT", "6379"),
			Password:        getEnv("REDIS_PASSWORD", ""),
			DB:              getIntEnv("REDIS_DB", 0),
			MaxRetries:      getIntEnv("REDIS_MAX_RETRIES", 3),
			MinRetryBackoff: getDurationEnv("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: getDurationEnv("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			DialTimeout:     getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     getDurationEnv("REDIS_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("REDIS_WRITE_TIMEOUT", 5*time.Second),
			PoolSize:        getIntEnv("REDIS_POOL_SIZE", 20),
			MinIdleConns:    getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			PoolTimeout:     getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:     getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
			ConnectAttempts: getIntEnv("REDIS_CONNECT_ATTEMPTS", 5),
			ConnectBackoff:  getDurationEnv("REDIS_CONNECT_BACKOFF", 2*time.Second),
			OpTimeout:       getDurationEnv("REDIS_OP_TIMEOUT", 5*time.Second),
		},
		Cache: CacheConfig{
			Enabled:    getBoolEnv("CACHE_ENABLED", true),
			TTLShort:   getSecondsEnv("CACHE_TTL_SHORT", 300),
			TTLBBB:     getSecondsEnv("CACHE_TTL_BBB", 180),
			TTLRunning: getSecondsEnv("CACHE_TTL_BBB_RUNNING", 60),
			TTLMedium:  getSecondsEnv("CACHE_TTL_MEDIUM", 1800),
			TTLLong:    getSecondsEnv("CACHE_TTL_LONG", 3600),
		},
		BBB: BBBConfig{
			ServerBaseURL:   getEnv("BBB_SERVER_BASE_URL", "http://localhost/bigbluebutton/api/"),
			Secret:          getEnv("BBB_SECRET", ""),
			SecretName:      getEnv("BBB_SECRET_NAME", ""),
			RequestTimeout:  getDurationEnv("BBB_REQUEST_TIMEOUT", 10*time.Second),
			MeetingEndedURL: getEnv("BBB_MEETING_ENDED_URL", ""),
			Welcome:         getEnv("BBB_WELCOME", "Welcome to SpoutBreeze!"),
			Record:          getBoolEnv("BBB_RECORD", true),
		},
		Asynq: AsynqConfig{
			Concurrency:     getIntEnv("ASYNQ_CONCURRENCY", 10),
			Queues:          parseQueues(getEnv("ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:  getBoolEnv("ASYNQ_STRICT_PRIORITY", false),
			RetryMax:        getIntEnv("ASYNQ_RETRY_MAX", 10),
			ShutdownTimeout: getDurationEnv("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
			SyncInterval:    getEnv("MEETING_SYNC_INTERVAL", "@every 1m"),
		},
		AWS: AWSConfig{
			Region:                getEnv("AWS_REGION", "us-east-1"),
			SecretsManagerEnabled: getBoolEnv("AWS_SECRETS_MANAGER_ENABLED", false),
		},
		Security: SecurityConfig{
			RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 100),
			RateLimitDuration: getDurationEnv("RATE_LIMIT_DURATION", time.Minute),
			AllowedOrigins:    getSliceEnv("ALLOWED_ORIGINS", []string{"*"}),
			SecureHeaders:     getBoolEnv("SECURE_HEADERS", true),
		},
		Server: ServerConfig{
			Host:              getEnv("SERVER_HOST", "0.0.0.0"),
			Port:              getEnv("SERVER_PORT", "8000"),
			ReadTimeout:       getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout:    getDurationEnv("SERVER_REQUEST_TIMEOUT", 25*time.Second),
			MaxHeaderBytes:    getIntEnv("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			GracefulTimeout:   getDurationEnv("SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
			EnableHealthCheck: getBoolEnv("ENABLE_HEALTH_CHECK", true),
			TLSEnabled:        getBoolEnv("TLS_ENABLED", false),
			TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		},
	}

	if cfg.BBB.MeetingEndedURL == "" {
		cfg.BBB.MeetingEndedURL = strings.TrimSuffix(cfg.App.APIBaseURL, "/") + "/api/bbb/callback/meeting-ended"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validator checks a loaded configuration
type Validator interface {
	Validate(cfg *Config) error
}

// Validate runs the basic checks, plus the production checks in production.
// The BBB secret may still be empty here when it comes from Secrets Manager.
func (c *Config) Validate() error {
	validators := []Validator{&BasicValidator{}}
	if c.IsProduction() {
		validators = append(validators, &ProductionValidator{})
	}

	for _, v := range validators {
		if err := v.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// GetDatabaseURL returns the formatted database connection string
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// RedisOptions builds go-redis options, parsing REDIS_URL when present
func (c *Config) RedisOptions() (*redis.Options, error) {
	var opts *redis.Options
	if c.Redis.URL != "" {
		parsed, err := redis.ParseURL(c.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     net.JoinHostPort(c.Redis.Host, c.Redis.Port),
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		}
	}

	opts.MaxRetries = c.Redis.MaxRetries
	opts.MinRetryBackoff = c.Redis.MinRetryBackoff
	opts.MaxRetryBackoff = c.Redis.MaxRetryBackoff
	opts.DialTimeout = c.Redis.DialTimeout
	opts.ReadTimeout = c.Redis.ReadTimeout
	opts.WriteTimeout = c.Redis.WriteTimeout
	opts.PoolSize = c.Redis.PoolSize
	opts.MinIdleConns = c.Redis.MinIdleConns
	opts.PoolTimeout = c.Redis.PoolTimeout
	opts.ConnMaxIdleTime = c.Redis.IdleTimeout
	return opts, nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults() {
	viper.SetDefault("app.name", "spoutbreeze-api")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

// getSecondsEnv reads a TTL given either as plain seconds or as a duration
func getSecondsEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	pairs := strings.Split(queuesStr, ",")
	for _, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
