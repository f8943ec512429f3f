package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/hairfit-kit/pkg/domain"
	"github.com/shouni/hairfit-kit/pkg/prompt"
	"google.golang.org/genai"
)

// HairstyleGenerator は、ユーザー写真と参照スタイル写真から
// 1回の Gemini 呼び出しで合成画像とスタイリストコメントを得るオーケストレーターです。
// 状態を持たないため、繰り返し呼び出しても安全です。
type HairstyleGenerator struct {
	aiClient ContentGenerator
	model    string
}

// NewHairstyleGenerator は HairstyleGenerator を初期化します。
func NewHairstyleGenerator(aiClient ContentGenerator, model string) (*HairstyleGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &HairstyleGenerator{aiClient: aiClient, model: model}, nil
}

// Generate は2枚の画像とプロンプトを送信し、応答を GenerationResult に変換します。
// 通信エラーはそのまま返し、画像が無い応答は *domain.GenerationFailure になります。
func (g *HairstyleGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	userPart, err := imagePart(req.UserImage)
	if err != nil {
		return nil, fmt.Errorf("ユーザー画像が不正です: %w", err)
	}
	stylePart, err := imagePart(req.ReferenceImage)
	if err != nil {
		return nil, fmt.Errorf("参照画像が不正です: %w", err)
	}

	text := prompt.BuildHairstyle(req.Style, req.Color)
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{userPart, stylePart, {Text: text}}, genai.RoleUser),
	}

	slog.InfoContext(ctx, "Geminiにヘアスタイル合成をリクエストします",
		"model", g.model,
		"user_mime", userPart.InlineData.MIMEType,
		"style_mime", stylePart.InlineData.MIMEType,
		"has_style_info", req.Style != nil,
		"has_color_info", !req.Color.KeepsOriginal(),
	)

	resp, err := g.aiClient.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: responseModalities,
	})
	if err != nil {
		return nil, err // ラップは呼び出し元で行う
	}

	return parseToResult(resp)
}
