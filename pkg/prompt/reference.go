package prompt

import (
	"fmt"

	"github.com/shouni/hairfit-kit/pkg/domain"
)

// BuildReference はカタログ用の参照写真を生成するためのプロンプトを返します。
func BuildReference(style domain.HairStyle) string {
	subject := "woman"
	if style.Gender == domain.GenderMale {
		subject = "man"
	}
	return fmt.Sprintf(
		"Generate a professional salon portfolio photo of a young Korean %s with a \"%s\" (%s) hairstyle. %s. "+
			"Natural hair color. Shot from a front-facing angle, soft studio lighting, clean neutral background, "+
			"high-resolution, photorealistic. The model should look natural and confident. No text or watermarks.",
		subject, style.NameKo, style.Name, style.Description,
	)
}
