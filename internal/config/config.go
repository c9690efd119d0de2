package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"parish-liturgy-backend/internal/constants"
)

type Config struct {
	// Database
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string

	// Redis
	EnableRedis bool
	RedisURL    string

	// Server
	Port        string
	Environment string
	LogLevel    string

	// CORS
	CORSOrigins []string

	// Upload
	UploadDir string

	// Rate Limiting (render and export endpoints)
	RateLimitRPS   float64
	RateLimitBurst int

	// Features
	EnableMetrics   bool
	SeedStarterData bool
	SeedParishName  string

	// Rendering
	TextExportWidth int
	DefaultLanguage string
	FieldCacheTTL   time.Duration
}

func New() *Config {
	c := &Config{
		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "parish"),
		DBPassword: getEnv("DB_PASSWORD", "parishpassword"),
		DBName:     getEnv("DB_NAME", "liturgy"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Redis
		EnableRedis: getEnvAsBool("ENABLE_REDIS", false),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// CORS
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")),

		// Upload
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		// Rate Limiting
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 20),

		// Features
		EnableMetrics:   getEnvAsBool("ENABLE_METRICS", true),
		SeedStarterData: getEnvAsBool("SEED_STARTER_DATA", false),
		SeedParishName:  getEnv("SEED_PARISH_NAME", "Sample Parish"),

		// Rendering
		TextExportWidth: getEnvAsInt("TEXT_EXPORT_WIDTH", constants.DefaultTextWidth),
		DefaultLanguage: constants.NormaliseLanguage(getEnv("DEFAULT_LANGUAGE", constants.LanguageEnglish)),
		FieldCacheTTL:   time.Duration(getEnvAsInt("FIELD_CACHE_TTL_SECONDS", 300)) * time.Second,
	}

	if c.TextExportWidth <= 0 {
		c.TextExportWidth = constants.DefaultTextWidth
	}

	// Build DSN
	c.DatabaseURL = getEnv("DATABASE_URL", fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	))

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
