package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "GEMINI_API_VERSION", "WEB_ADDR",
		"LOG_LEVEL", "HTTP_TIMEOUT_SECONDS", "REQUEST_TIMEOUT_SECONDS", "PREFER_IPV4",
		"STYLE_ASSET_DIR", "ASSET_CACHE_TTL_MINUTES", "COMPRESS_REFERENCE_IMAGES",
		"SESSION_IDLE_MINUTES", "MAX_UPLOAD_MB", "CAPTURE_MAX_SIDE",
		"STYLE_IMAGE_DELAY_MS", "STYLE_IMAGE_CONCURRENCY", "STYLE_IMAGE_SEED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("未設定ならデフォルト値になる", func(t *testing.T) {
		clearEnv(t)

		cfg := Load()

		assert.False(t, cfg.HasAPIKey())
		assert.Equal(t, "gemini-2.5-flash-image", cfg.GeminiModel)
		assert.Equal(t, ":8080", cfg.WebAddr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "public", cfg.StyleAssetDir)
		assert.Equal(t, 180*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
		assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
		assert.Equal(t, 1, cfg.StyleImageConc)
		assert.True(t, cfg.PreferIPv4)
		assert.True(t, cfg.CompressAssets)
		assert.Nil(t, cfg.StyleImageSeed)
	})

	t.Run("環境変数の値が反映される", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "  test-key  ")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
		t.Setenv("PREFER_IPV4", "false")
		t.Setenv("STYLE_IMAGE_CONCURRENCY", "3")
		t.Setenv("STYLE_IMAGE_SEED", "77")

		cfg := Load()

		assert.True(t, cfg.HasAPIKey())
		assert.Equal(t, "test-key", cfg.GeminiAPIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.False(t, cfg.PreferIPv4)
		assert.Equal(t, 3, cfg.StyleImageConc)
		require.NotNil(t, cfg.StyleImageSeed)
		assert.Equal(t, int64(77), *cfg.StyleImageSeed)
	})

	t.Run("不正な値はデフォルトに戻る", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_TIMEOUT_SECONDS", "abc")
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "-5")
		t.Setenv("STYLE_IMAGE_CONCURRENCY", "0")
		t.Setenv("CAPTURE_MAX_SIDE", "0")
		t.Setenv("STYLE_IMAGE_SEED", "seed")

		cfg := Load()

		assert.Equal(t, 180*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 180*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 1, cfg.StyleImageConc)
		assert.Equal(t, 1024, cfg.CaptureMaxSide)
		assert.Nil(t, cfg.StyleImageSeed)
	})
}
