package styleimages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/hairfit-kit/pkg/domain"
)

// ErrWriteAsset は出力ディレクトリへの書き込み失敗です。残りのスタイルも書けないため実行全体を止めます。
var ErrWriteAsset = errors.New("failed to write style asset")

// ReferenceGenerator は1スタイル分の参照写真を生成します。
type ReferenceGenerator interface {
	GenerateReference(ctx context.Context, style domain.HairStyle) (*domain.ImageResponse, error)
}

type Options struct {
	Generator   ReferenceGenerator
	Styles      []domain.HairStyle
	AssetDir    string        // ImagePath はこのディレクトリからの相対パスとして保存される
	Delay       time.Duration // リクエスト開始の間隔
	Concurrency int
}

// Report は実行結果の集計です。
type Report struct {
	Success int
	Failed  []string
}

// Run は全スタイルの参照写真を生成して AssetDir 配下に書き出します。
// 生成の失敗では全体を止めず、失敗したスタイル ID を Report に残します。
// 書き込みに失敗した場合は残りを中止し、ErrWriteAsset を返します。
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Generator == nil {
		return Report{}, errors.New("reference generator is required")
	}
	if opts.AssetDir == "" {
		return Report{}, errors.New("asset dir is required")
	}
	conc := opts.Concurrency
	if conc < 1 {
		conc = 1
	}

	var (
		mu     sync.Mutex
		report Report
	)
	record := func(id string, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		if ok {
			report.Success++
			return
		}
		report.Failed = append(report.Failed, id)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(conc)

	total := len(opts.Styles)
	for i, style := range opts.Styles {
		if i > 0 && opts.Delay > 0 {
			if err := sleep(gctx, opts.Delay); err != nil {
				break
			}
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			slog.InfoContext(gctx, "参照画像を生成中", "index", i+1, "total", total, "style", style.ID)
			path, err := generateOne(gctx, opts.Generator, opts.AssetDir, style)
			if err != nil {
				slog.ErrorContext(gctx, "参照画像の生成に失敗しました", "style", style.ID, "error", err)
				record(style.ID, false)
				if errors.Is(err, ErrWriteAsset) {
					return err
				}
				return nil
			}
			slog.InfoContext(gctx, "参照画像を保存しました", "style", style.ID, "path", path)
			record(style.ID, true)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, ctx.Err()
}

func generateOne(ctx context.Context, gen ReferenceGenerator, assetDir string, style domain.HairStyle) (string, error) {
	rel := strings.TrimPrefix(filepath.Clean("/"+filepath.FromSlash(style.ImagePath)), string(filepath.Separator))
	if rel == "" || rel == "." {
		return "", fmt.Errorf("style %s has no image path", style.ID)
	}

	img, err := gen.GenerateReference(ctx, style)
	if err != nil {
		return "", err
	}

	path := filepath.Join(assetDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: 出力ディレクトリの作成に失敗しました: %w", ErrWriteAsset, err)
	}
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("%w: 画像の書き込みに失敗しました: %w", ErrWriteAsset, err)
	}
	return path, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
