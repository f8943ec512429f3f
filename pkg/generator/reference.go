package generator

import (
	"context"
	"fmt"

	"github.com/shouni/hairfit-kit/pkg/domain"
	"github.com/shouni/hairfit-kit/pkg/prompt"
	"github.com/shouni/hairfit-kit/pkg/utils"
	"google.golang.org/genai"
)

// ReferenceGenerator はカタログ用のスタイル参照写真をテキストから生成します。
type ReferenceGenerator struct {
	aiClient ContentGenerator
	model    string
	seed     *int64
}

// NewReferenceGenerator は ReferenceGenerator を初期化します。
func NewReferenceGenerator(aiClient ContentGenerator, model string) (*ReferenceGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &ReferenceGenerator{aiClient: aiClient, model: model}, nil
}

// WithSeed は生成に使うシードを固定します。nil なら指定しません。
func (g *ReferenceGenerator) WithSeed(seed *int64) *ReferenceGenerator {
	g.seed = seed
	return g
}

// GenerateReference は1スタイル分の参照写真を生成します。
func (g *ReferenceGenerator) GenerateReference(ctx context.Context, style domain.HairStyle) (*domain.ImageResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt.BuildReference(style), genai.RoleUser),
	}

	resp, err := g.aiClient.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: responseModalities,
		Seed:               utils.SeedToInt32(g.seed),
	})
	if err != nil {
		return nil, fmt.Errorf("参照画像生成エラー (%s): %w", style.ID, err)
	}
	return parseToImage(resp)
}
