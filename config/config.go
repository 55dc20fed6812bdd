package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	DBUrl       string
	FrontendURL string

	// Supabase
	SupabaseUrl            string
	SupabaseAnonKey        string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string

	// Redis
	RedisURL      string
	RedisPassword string

	// Rate Limiting
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAuthThreshold   int

	// Directory search cache; 0 disables
	DirectoryCacheTTLSeconds int

	// Cron expression for the advertisement expiry job; empty disables
	AdExpirySchedule string

	// Database pool
	DBMaxConns int
	DBMinConns int

	// Run embedded migrations when the server starts
	AutoMigrate bool
}

func LoadConfig() (*Config, error) {
	// .env is only present locally
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		// Trailing slash would produce .co//auth
		SupabaseUrl:            strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseAnonKey:        getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		DirectoryCacheTTLSeconds: getEnvInt("DIRECTORY_CACHE_TTL_SECONDS", 30),
		AdExpirySchedule:         getEnv("AD_EXPIRY_SCHEDULE", "@every 15m"),
		DBMaxConns:               getEnvInt("DB_MAX_CONNS", 10),
		DBMinConns:               getEnvInt("DB_MIN_CONNS", 1),
		AutoMigrate:              getEnvBool("AUTO_MIGRATE", false),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SupabaseServiceRoleKey == "" {
		log.Println("WARNING: SUPABASE_SERVICE_ROLE_KEY not configured. Signup and create-profile will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback and the directory cache is disabled.")
	}

	return cfg, nil
}

// DirectoryCacheTTL returns the cache lifetime for directory searches.
func (c *Config) DirectoryCacheTTL() time.Duration {
	if c.DirectoryCacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.DirectoryCacheTTLSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
