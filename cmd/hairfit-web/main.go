package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/hairfit-kit/internal/config"
	"github.com/shouni/hairfit-kit/internal/httpclient"
	"github.com/shouni/hairfit-kit/internal/logging"
	"github.com/shouni/hairfit-kit/internal/server"
	"github.com/shouni/hairfit-kit/pkg/catalog"
	"github.com/shouni/hairfit-kit/pkg/generator"
	"github.com/shouni/hairfit-kit/pkg/session"
)

func main() {
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.HTTPTimeout,
	})

	model, err := generator.NewContentGenerator(ctx, generator.ClientOptions{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		HTTPClient: httpClient,
	})
	if err != nil {
		// 起動は続け、生成リクエストのたびに失敗させる
		slog.Warn("Gemini クライアントが利用できません。生成は失敗します", "error", err)
	}

	gen, err := generator.NewHairstyleGenerator(model, cfg.GeminiModel)
	if err != nil {
		slog.Error("failed to create generator", "error", err)
		os.Exit(1)
	}

	assets := os.DirFS(cfg.StyleAssetDir)
	loader, err := generator.NewAssetLoader(generator.AssetLoaderOptions{
		HTTPClient: httpkit.New(cfg.HTTPTimeout),
		Assets:     assets,
		Cache:      cache.New(cfg.AssetCacheTTL, 2*cfg.AssetCacheTTL),
		CacheTTL:   cfg.AssetCacheTTL,
		Compress:   cfg.CompressAssets,
	})
	if err != nil {
		slog.Error("failed to create asset loader", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	store := session.NewStore(session.Options{
		Generator: gen,
		Loader:    loader,
		Catalog:   cat,
	})

	srv, err := server.New(server.Options{
		Addr:           cfg.WebAddr,
		Store:          store,
		Catalog:        cat,
		Assets:         assets,
		MaxUploadBytes: cfg.MaxUploadBytes,
		CaptureMaxSide: cfg.CaptureMaxSide,
		RequestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	go sweepSessions(ctx, store, cfg.SessionIdle)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("error during server shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func sweepSessions(ctx context.Context, store *session.Store, idle time.Duration) {
	if idle <= 0 {
		return
	}
	interval := idle / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(idle); n > 0 {
				slog.Info("idle sessions removed", "count", n, "remaining", store.Len())
			}
		}
	}
}
