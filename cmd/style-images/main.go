package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/hairfit-kit/internal/config"
	"github.com/shouni/hairfit-kit/internal/httpclient"
	"github.com/shouni/hairfit-kit/internal/logging"
	"github.com/shouni/hairfit-kit/internal/styleimages"
	"github.com/shouni/hairfit-kit/pkg/catalog"
	"github.com/shouni/hairfit-kit/pkg/generator"
)

func main() {
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	if !cfg.HasAPIKey() {
		slog.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := generator.NewContentGenerator(ctx, generator.ClientOptions{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		HTTPClient: httpclient.New(httpclient.Options{PreferIPv4: cfg.PreferIPv4, Timeout: cfg.HTTPTimeout}),
	})
	if err != nil {
		slog.Error("failed to create Gemini client", "error", err)
		os.Exit(1)
	}

	gen, err := generator.NewReferenceGenerator(model, cfg.GeminiModel)
	if err != nil {
		slog.Error("failed to create reference generator", "error", err)
		os.Exit(1)
	}
	gen.WithSeed(cfg.StyleImageSeed)

	styles := catalog.Default().Styles()
	slog.Info("参照画像の生成を開始します", "styles", len(styles), "dir", cfg.StyleAssetDir)

	report, err := styleimages.Run(ctx, styleimages.Options{
		Generator:   gen,
		Styles:      styles,
		AssetDir:    cfg.StyleAssetDir,
		Delay:       cfg.StyleImageDelay,
		Concurrency: cfg.StyleImageConc,
	})
	slog.Info("完了しました", "success", report.Success, "failed", len(report.Failed), "failed_ids", report.Failed)
	if err != nil {
		slog.Error("参照画像の生成を中断しました", "error", err)
		os.Exit(1)
	}
	if len(report.Failed) > 0 {
		os.Exit(1)
	}
}
