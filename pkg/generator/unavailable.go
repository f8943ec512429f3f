package generator

import (
	"context"

	"google.golang.org/genai"
)

// UnavailableModel はクライアントを初期化できなかった場合の代替です。
// 起動は止めず、呼び出し時に初期化エラーを返します。
type UnavailableModel struct {
	Err error
}

func (m UnavailableModel) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, m.Err
}
