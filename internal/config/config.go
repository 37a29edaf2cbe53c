package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

var ErrMissingConfig = errors.New("missing required configuration")

const (
	StorageSupabase = "supabase"
	StorageLocal    = "local"

	DraftStoreMemory = "memory"
	DraftStoreRedis  = "redis"
)

type DBConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

type ServerConfig struct {
	Port string
	Env  string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	Driver         string
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
	MediaDir       string
	MediaBaseURL   string
}

type DraftConfig struct {
	Store         string
	TTL           time.Duration
	PurgeInterval time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type Config struct {
	ServiceName string
	DB          DBConfig
	Server      ServerConfig
	JWT         JWTConfig
	Log         LogConfig
	Storage     StorageConfig
	Draft       DraftConfig
}

// Load reads an optional .env file, then the environment. It fails when a
// value without a sensible default is missing.
func Load() (*Config, error) {
	cfg := read()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase is Load for tools that only talk to the database.
func LoadDatabase() (*Config, error) {
	cfg := read()
	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: POSTGRES_URL", ErrMissingConfig)
	}
	return cfg, nil
}

func read() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "menuboard"),
		DB: DBConfig{
			URL:             getEnv("POSTGRES_URL", ""),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    getEnvAsDuration("JWT_TTL", 12*time.Hour),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:         strings.ToLower(getEnv("STORAGE_DRIVER", StorageSupabase)),
			SupabaseURL:    strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
			SupabaseKey:    getEnv("SUPABASE_KEY", ""),
			SupabaseBucket: getEnv("SUPABASE_BUCKET", "cardapio"),
			MediaDir:       getEnv("MEDIA_DIR", "./media"),
			MediaBaseURL:   strings.TrimRight(getEnv("MEDIA_BASE_URL", "/media"), "/"),
		},
		Draft: DraftConfig{
			Store:         strings.ToLower(getEnv("DRAFT_STORE", DraftStoreMemory)),
			TTL:           getEnvAsDuration("DRAFT_TTL", 2*time.Hour),
			PurgeInterval: getEnvAsDuration("DRAFT_PURGE_INTERVAL", 10*time.Minute),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
	}
}

func (c *Config) Validate() error {
	var missing []string
	if c.DB.URL == "" {
		missing = append(missing, "POSTGRES_URL")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	switch c.Storage.Driver {
	case StorageSupabase:
		if c.Storage.SupabaseURL == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if c.Storage.SupabaseKey == "" {
			missing = append(missing, "SUPABASE_KEY")
		}
	case StorageLocal:
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", ErrMissingConfig, c.Storage.Driver)
	}
	switch c.Draft.Store {
	case DraftStoreMemory, DraftStoreRedis:
	default:
		return fmt.Errorf("%w: unknown DRAFT_STORE %q", ErrMissingConfig, c.Draft.Store)
	}
	if c.Draft.PurgeInterval <= 0 {
		return fmt.Errorf("%w: DRAFT_PURGE_INTERVAL must be positive", ErrMissingConfig)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// LogFields is what gets printed at startup; secrets stay out.
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("port", c.Server.Port),
		zap.String("storage_driver", c.Storage.Driver),
		zap.String("draft_store", c.Draft.Store),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	switch getEnv(key, "") {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
