package generator

import (
	"strings"

	"github.com/shouni/hairfit-kit/pkg/domain"
	"github.com/shouni/hairfit-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// imagePart は data URI を InlineData パーツに変換します。
// MIME は画像ごとにプレフィックスから判定します。
func imagePart(value string) (*genai.Part, error) {
	data, mimeType, err := imgutil.DecodeDataURI(value, imgutil.DefaultInputMIME)
	if err != nil {
		return nil, err
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}, nil
}

// parseToResult は最初の候補から画像とテキストを取り出します。
// 最初の InlineData パーツが画像、テキストパーツは順に連結してトリムしたものがコメントです。
func parseToResult(resp *genai.GenerateContentResponse) (*domain.GenerationResult, error) {
	candidate := firstCandidate(resp)
	if candidate == nil {
		return nil, &domain.GenerationFailure{FinishReason: unknownFinishReason}
	}

	var image *genai.Blob
	var comment strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				if image == nil {
					image = part.InlineData
				}
				continue
			}
			comment.WriteString(part.Text)
		}
	}

	if image == nil {
		return nil, &domain.GenerationFailure{FinishReason: finishReason(candidate)}
	}

	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = imgutil.DefaultOutputMIME
	}
	return &domain.GenerationResult{
		Image:   imgutil.EncodeDataURI(mimeType, image.Data),
		Comment: strings.TrimSpace(comment.String()),
	}, nil
}

// parseToImage は画像だけが必要な呼び出し（参照画像生成）向けです。
func parseToImage(resp *genai.GenerateContentResponse) (*domain.ImageResponse, error) {
	candidate := firstCandidate(resp)
	if candidate == nil {
		return nil, &domain.GenerationFailure{FinishReason: unknownFinishReason}
	}
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = imgutil.DefaultOutputMIME
				}
				return &domain.ImageResponse{Data: part.InlineData.Data, MimeType: mimeType}, nil
			}
		}
	}
	return nil, &domain.GenerationFailure{FinishReason: finishReason(candidate)}
}

// Gemini からの最初の候補 (Candidate) のみを利用する。
func firstCandidate(resp *genai.GenerateContentResponse) *genai.Candidate {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	return resp.Candidates[0]
}

func finishReason(c *genai.Candidate) string {
	if c == nil || c.FinishReason == "" {
		return unknownFinishReason
	}
	return string(c.FinishReason)
}
