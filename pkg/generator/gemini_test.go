package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/hairfit-kit/pkg/domain"
	"github.com/shouni/hairfit-kit/pkg/imgutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const (
	userPNG  = "data:image/png;base64,VVNFUg=="  // "USER"
	styleJPG = "data:image/jpeg;base64,U1RZTEU=" // "STYLE"
)

func TestNewHairstyleGenerator(t *testing.T) {
	t.Run("nilチェック: 依存関係が足りない場合はエラーを返すのだ", func(t *testing.T) {
		_, err := NewHairstyleGenerator(nil, "model")
		assert.Error(t, err)
	})

	t.Run("モデル名が空なら既定値", func(t *testing.T) {
		gen, err := NewHairstyleGenerator(&mockAIClient{}, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultModel, gen.model)
	})
}

func TestHairstyleGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("成功: 画像2枚とテキスト1つを送信するのだ", func(t *testing.T) {
		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				assert.Equal(t, "gemini-test", model)
				require.Len(t, contents, 1)
				parts := contents[0].Parts
				require.Len(t, parts, 3)

				assert.Equal(t, "image/png", parts[0].InlineData.MIMEType)
				assert.Equal(t, []byte("USER"), parts[0].InlineData.Data)
				assert.Equal(t, "image/jpeg", parts[1].InlineData.MIMEType)
				assert.Equal(t, []byte("STYLE"), parts[1].InlineData.Data)
				assert.Nil(t, parts[2].InlineData)
				assert.NotContains(t, parts[2].Text, "The requested hairstyle is")
				assert.NotContains(t, parts[2].Text, "Hair color requested")

				require.NotNil(t, config)
				assert.ElementsMatch(t, []string{"IMAGE", "TEXT"}, config.ResponseModalities)
				return imageResponse("image/png", []byte("after")), nil
			},
		}

		gen, err := NewHairstyleGenerator(ai, "gemini-test")
		require.NoError(t, err)

		out, err := gen.Generate(ctx, domain.GenerationRequest{UserImage: userPNG, ReferenceImage: styleJPG})
		require.NoError(t, err)
		assert.Equal(t, imgutil.EncodeDataURI("image/png", []byte("after")), out.Image)
		assert.Equal(t, "", out.Comment)
		assert.Equal(t, 1, ai.calls)
	})

	t.Run("例: スタイルと色が埋め込まれコメントが返る", func(t *testing.T) {
		req := domain.GenerationRequest{
			UserImage:      userPNG,
			ReferenceImage: styleJPG,
			Style: &domain.StyleInfo{
				Name: "Bob Cut", NameKo: "보브컷", Description: "...", Tags: []string{"bob"}, Gender: domain.GenderFemale,
			},
			Color: &domain.ColorInfo{ID: "ash-grey", Name: "Ash Grey", NameKo: "애쉬 그레이", Description: "Cool silvery..."},
		}

		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				text := contents[0].Parts[2].Text
				assert.Contains(t, text, "보브컷")
				assert.Contains(t, text, "애쉬 그레이")
				return responseWithParts(genai.FinishReasonStop,
					&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("decoded")}},
					&genai.Part{Text: "좋아요, 잘 어울려요."},
				), nil
			},
		}

		gen, _ := NewHairstyleGenerator(ai, "")
		out, err := gen.Generate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, imgutil.EncodeDataURI("image/png", []byte("decoded")), out.Image)
		assert.Equal(t, "좋아요, 잘 어울려요.", out.Comment)
	})

	t.Run("失敗: 通信エラーはそのまま返るのだ", func(t *testing.T) {
		transportErr := errors.New("connection reset")
		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, transportErr
			},
		}

		gen, _ := NewHairstyleGenerator(ai, "")
		_, err := gen.Generate(ctx, domain.GenerationRequest{UserImage: userPNG, ReferenceImage: styleJPG})
		assert.Same(t, transportErr, err)
	})

	t.Run("失敗: 画像の無い応答は GenerationFailure", func(t *testing.T) {
		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return responseWithParts(genai.FinishReasonSafety, &genai.Part{Text: "I can't"}), nil
			},
		}

		gen, _ := NewHairstyleGenerator(ai, "")
		_, err := gen.Generate(ctx, domain.GenerationRequest{UserImage: userPNG, ReferenceImage: styleJPG})

		var gf *domain.GenerationFailure
		require.ErrorAs(t, err, &gf)
		assert.Equal(t, "SAFETY", gf.FinishReason)
	})

	t.Run("失敗: 不正な入力画像では呼び出さない", func(t *testing.T) {
		ai := &mockAIClient{}
		gen, _ := NewHairstyleGenerator(ai, "")

		_, err := gen.Generate(ctx, domain.GenerationRequest{UserImage: "", ReferenceImage: styleJPG})
		assert.ErrorIs(t, err, imgutil.ErrInvalidDataURI)
		assert.Equal(t, 0, ai.calls)
	})

	t.Run("UnavailableModel は呼び出し時にエラーを返す", func(t *testing.T) {
		initErr := errors.New("api key is required")
		gen, _ := NewHairstyleGenerator(UnavailableModel{Err: initErr}, "")

		_, err := gen.Generate(ctx, domain.GenerationRequest{UserImage: userPNG, ReferenceImage: styleJPG})
		assert.ErrorIs(t, err, initErr)
	})
}
