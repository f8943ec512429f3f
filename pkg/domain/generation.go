package domain

import "fmt"

// GenerationRequest は1回のヘアスタイル合成要求です。
// 画像はどちらも data URI もしくは生の base64 文字列で保持します。
type GenerationRequest struct {
	UserImage      string
	ReferenceImage string
	Style          *StyleInfo
	Color          *ColorInfo
}

// GenerationResult は合成結果です。Comment は空の場合もあります。
type GenerationResult struct {
	Image   string // data:<mime>;base64,<data>
	Comment string
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
}

// GenerationFailure は応答に画像パーツが含まれなかったことを表します。
type GenerationFailure struct {
	FinishReason string
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("no image data in Gemini response (finishReason: %s)", e.FinishReason)
}
