package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/shouni/hairfit-kit/pkg/imgutil"
	"golang.org/x/sync/singleflight"
)

// ErrUnsafeURL は SSRF 対策で拒否された参照画像 URL を表します。
var ErrUnsafeURL = errors.New("unsafe url")

// AssetLoader はスタイル参照画像を取得し、data URI としてキャッシュします。
// ローカルの静的アセット（assets）と公開 URL の両方に対応します。
type AssetLoader struct {
	httpClient HTTPClient
	assets     fs.FS
	cache      ImageCacher
	expiration time.Duration
	compress   bool
	group      singleflight.Group
}

// AssetLoaderOptions は AssetLoader の依存関係です。
type AssetLoaderOptions struct {
	HTTPClient HTTPClient
	Assets     fs.FS
	Cache      ImageCacher // nil を許容（キャッシュなし動作）
	CacheTTL   time.Duration
	Compress   bool
}

// NewAssetLoader は依存関係を注入して AssetLoader を初期化します。
func NewAssetLoader(opts AssetLoaderOptions) (*AssetLoader, error) {
	if opts.HTTPClient == nil && opts.Assets == nil {
		return nil, fmt.Errorf("httpClient or assets is required")
	}
	return &AssetLoader{
		httpClient: opts.HTTPClient,
		assets:     opts.Assets,
		cache:      opts.Cache,
		expiration: opts.CacheTTL,
		compress:   opts.Compress,
	}, nil
}

// LoadReference は参照画像を読み込み、data URI を返します。
// 同じ参照への同時リクエストは1回の取得にまとめられます。
func (l *AssetLoader) LoadReference(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("参照画像のパスが空です")
	}

	key := cacheKeyReference + ref
	if l.cache != nil {
		if cached, found := l.cache.Get(key); found {
			if uri, ok := cached.(string); ok {
				return uri, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "ref", ref, "type", fmt.Sprintf("%T", cached))
		}
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		// 結果は待っている全員で共有するため、最初の呼び出し元の切断で中断しない
		data, err := l.fetchImageData(context.WithoutCancel(ctx), ref)
		if err != nil {
			return nil, err
		}

		if l.compress {
			if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil && len(compressed) < len(data) {
				data = compressed
			}
		}

		mimeType := imgutil.DetectMIME(data)
		if !imgutil.IsImageMIME(mimeType) {
			return nil, fmt.Errorf("MIMEタイプが画像ではありません: %s", mimeType)
		}

		uri := imgutil.EncodeDataURI(mimeType, data)
		if l.cache != nil {
			l.cache.Set(key, uri, l.expiration)
		}
		return uri, nil
	})
	if err != nil {
		return "", fmt.Errorf("参照画像の読み込みに失敗しました (%s): %w", ref, err)
	}
	return v.(string), nil
}

func (l *AssetLoader) fetchImageData(ctx context.Context, ref string) ([]byte, error) {
	if isRemote(ref) {
		if l.httpClient == nil {
			return nil, fmt.Errorf("http client is not configured")
		}
		if safe, err := l.httpClient.IsSafeURL(ref); err != nil || !safe {
			if err == nil {
				err = fmt.Errorf("blocked: %s", ref)
			}
			return nil, fmt.Errorf("%w: %v", ErrUnsafeURL, err)
		}
		return l.httpClient.FetchBytes(ctx, ref)
	}

	if l.assets == nil {
		return nil, fmt.Errorf("local assets are not configured")
	}
	// path.Clean でルートより上には出られない
	name := strings.TrimPrefix(path.Clean("/"+ref), "/")
	return fs.ReadFile(l.assets, name)
}

func isRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
