package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	DBDriver   string // sqlite|postgres
	DBPath     string
	DBURL      string
	DBPoolSize int

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	GeminiAPIKey string

	UploadDir  string
	ImageStore string // local|s3
	S3Bucket   string
	S3Prefix   string

	MarketFallbackFile string
	StaticDir          string
	CORSOrigins        []string

	LogLevel  string
	LogFormat string // json|console
}

// Load reads .env (when present) and the process environment.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from an env lookup so tests can feed their own values.
func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(get(k, "")); err == nil && v > 0 {
			return v
		}
		return def
	}
	ttl, err := time.ParseDuration(get("JWT_TTL", "168h"))
	if err != nil || ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	var origins []string
	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return AppConfig{
		Port:               get("PORT", "8080"),
		DBDriver:           strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:             get("DB_PATH", "krishi.db"),
		DBURL:              get("DATABASE_URL", ""),
		DBPoolSize:         getInt("DB_POOL_SIZE", 5),
		JWTSecret:          get("JWT_SECRET_KEY", "dev-secret-change-me"),
		JWTTTL:             ttl,
		BcryptCost:         getInt("BCRYPT_COST", 10),
		GeminiAPIKey:       get("GEMINI_API_KEY", ""),
		UploadDir:          get("UPLOAD_DIR", "uploads"),
		ImageStore:         strings.ToLower(get("IMAGE_STORE", "local")),
		S3Bucket:           get("S3_BUCKET", ""),
		S3Prefix:           get("S3_PREFIX", "pest/"),
		MarketFallbackFile: get("MARKET_FALLBACK_FILE", ""),
		StaticDir:          get("STATIC_DIR", "static"),
		CORSOrigins:        origins,
		LogLevel:           strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(get("LOG_FORMAT", "json")),
	}
}

// Redacted returns a copy safe to log.
func (c AppConfig) Redacted() AppConfig {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	c.JWTSecret = mask(c.JWTSecret)
	c.GeminiAPIKey = mask(c.GeminiAPIKey)
	c.DBURL = mask(c.DBURL)
	return c
}
