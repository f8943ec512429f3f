package generator

import (
	"context"
	"time"

	"github.com/shouni/hairfit-kit/pkg/domain"
	"google.golang.org/genai"
)

// ContentGenerator は Gemini の generateContent 呼び出しを抽象化します。
// *genai.Models（genai.Client.Models）がそのまま満たします。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ImageGenerator はビジネスロジック層が利用する合成の窓口です。
type ImageGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// ReferenceLoader はスタイル参照画像を data URI として読み込みます。
type ReferenceLoader interface {
	LoadReference(ctx context.Context, ref string) (string, error)
}

// ImageCacher は、画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// HTTPClient は、URLからデータを取得するためのインターフェースです。
// httpkit.ClientInterface のうち参照画像の取得に必要な部分です。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
	// IsSafeURL は、SSRF の観点で取得してよい URL かを判定します。
	IsSafeURL(urlStr string) (bool, error)
}
