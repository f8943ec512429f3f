package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shouni/hairfit-kit/pkg/utils"
)

const (
	defaultModel         = "gemini-2.5-flash-image"
	defaultTimeout       = 180 * time.Second
	defaultCaptureSide   = 1024
	defaultMaxUploadMB   = 20
	defaultStyleInterval = 3000 * time.Millisecond
)

// Config はプロセス全体の設定です。値はすべて環境変数から読み込みます。
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	GeminiBaseURL    string
	GeminiAPIVersion string

	WebAddr  string
	LogLevel string

	PreferIPv4     bool
	HTTPTimeout    time.Duration
	RequestTimeout time.Duration

	StyleAssetDir   string
	AssetCacheTTL   time.Duration
	CompressAssets  bool
	SessionIdle     time.Duration
	MaxUploadBytes  int64
	CaptureMaxSide  int
	StyleImageDelay time.Duration
	StyleImageConc  int
	StyleImageSeed  *int64
}

// Load は .env（存在すれば）を読み込んだうえで環境変数から Config を作ります。
// GEMINI_API_KEY が無くてもエラーにはしません。HasAPIKey で確認してください。
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:      getEnv("GEMINI_MODEL", defaultModel),
		GeminiBaseURL:    getEnv("GEMINI_BASE_URL", ""),
		GeminiAPIVersion: getEnv("GEMINI_API_VERSION", ""),
		WebAddr:          getEnv("WEB_ADDR", ":8080"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		PreferIPv4:       getEnvBool("PREFER_IPV4", true),
		HTTPTimeout:      time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 180)) * time.Second,
		RequestTimeout:   time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 180)) * time.Second,
		StyleAssetDir:    getEnv("STYLE_ASSET_DIR", "public"),
		AssetCacheTTL:    time.Duration(getEnvInt("ASSET_CACHE_TTL_MINUTES", 60)) * time.Minute,
		CompressAssets:   getEnvBool("COMPRESS_REFERENCE_IMAGES", true),
		SessionIdle:      time.Duration(getEnvInt("SESSION_IDLE_MINUTES", 30)) * time.Minute,
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_MB", defaultMaxUploadMB)) << 20,
		CaptureMaxSide:   getEnvInt("CAPTURE_MAX_SIDE", defaultCaptureSide),
		StyleImageDelay:  time.Duration(getEnvInt("STYLE_IMAGE_DELAY_MS", 3000)) * time.Millisecond,
		StyleImageConc:   getEnvInt("STYLE_IMAGE_CONCURRENCY", 1),
	}

	seed, err := utils.ParseSeed(os.Getenv("STYLE_IMAGE_SEED"))
	if err != nil {
		slog.Warn("STYLE_IMAGE_SEED を無視します", "error", err)
	}
	cfg.StyleImageSeed = seed

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultTimeout
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.AssetCacheTTL <= 0 {
		cfg.AssetCacheTTL = time.Hour
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadMB << 20
	}
	if cfg.CaptureMaxSide < 1 {
		cfg.CaptureMaxSide = defaultCaptureSide
	}
	if cfg.StyleImageDelay < 0 {
		cfg.StyleImageDelay = defaultStyleInterval
	}
	if cfg.StyleImageConc < 1 {
		cfg.StyleImageConc = 1
	}

	return cfg
}

// HasAPIKey は Gemini の API キーが設定されているかどうかを返します。
func (c Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
