package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// ErrMissingAPIKey は API キーが設定されていないことを表します。
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// ClientOptions は Gemini クライアントの接続設定です。
// APIKey は環境変数などの外部から渡し、ソースコードには埋め込みません。
type ClientOptions struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	HTTPClient *http.Client
}

// NewContentGenerator は Gemini API 用の ContentGenerator を作ります。
// 初期化に失敗した場合もエラーと共に UnavailableModel を返すため、
// 呼び出し側は起動を続け、生成時に失敗させることができます。
func NewContentGenerator(ctx context.Context, opts ClientOptions) (ContentGenerator, error) {
	if opts.APIKey == "" {
		return UnavailableModel{Err: ErrMissingAPIKey}, ErrMissingAPIKey
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    opts.BaseURL,
			APIVersion: opts.APIVersion,
		},
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		err = fmt.Errorf("Gemini クライアントの初期化に失敗しました: %w", err)
		return UnavailableModel{Err: err}, err
	}
	return client.Models, nil
}
