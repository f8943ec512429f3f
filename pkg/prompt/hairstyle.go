package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/hairfit-kit/pkg/domain"
)

const promptHeader = `You are a world-class virtual hair stylist and image synthesis expert specializing in Korean beauty trends.

## INPUT
- Image 1: The client's current photo (Target Person)
- Image 2: The reference hairstyle to apply. Use it ONLY for hair shape, length and texture. Ignore the face of the person in Image 2 completely.`

const promptTask = `## YOUR TASK
Create a photorealistic image of the client from Image 1 wearing the hairstyle from Image 2. The result should look like a professional salon "after" photo.`

const ruleIdentity = `### 1. Face Preservation (MOST IMPORTANT)
- Preserve the client's face EXACTLY: facial structure, eyes, nose, lips, eyebrows and facial proportions.
- Keep the same skin tone, skin texture and apparent age.
- The person in the output MUST be clearly recognizable as the same person from Image 1.
- Replace ONLY the hair. Do not alter, smooth or beautify the face.`

const ruleFaceShape = `### 2. Face Shape Adaptation
- Analyze the client's face shape (oval, round, square, heart, oblong, diamond).
- Adapt the reference hairstyle so it FLATTERS that face shape:
  · Round face: volume on top, sleeker sides to elongate
  · Square face: soften the jawline with layers or waves around the face
  · Oblong face: width at the sides, consider bangs to shorten
  · Heart face: volume below the ears, soft framing around the forehead
  · Oval face: keep balanced proportions
  · Diamond face: width at forehead and chin
- Adjust volume, length framing and parting to complement the facial proportions.`

const ruleBlending = `### 3. Natural Integration
- The hairline must blend seamlessly into the forehead with no sharp cutoffs or visible edges.
- Baby hairs, sideburns and face-framing strands must look natural.
- Keep correct shadows and highlights where hair meets skin (temples, ears, neck).`

const ruleLighting = `### 5. Lighting & Photo Quality
- Match lighting direction, intensity and color temperature of the original photo.
- Keep the same camera angle, framing and background as Image 1.
- High-resolution, sharp and photorealistic.`

const promptOutput = `## OUTPUT
Return exactly ONE photorealistic image of the client with the new hairstyle. No text, watermarks or split images inside the image.
Also return one or two short, friendly sentences in Korean as a stylist comment about how the new style suits the client.`

const colorKeepOriginal = `### 4. Hair Color
- Keep the hair color natural, matching the reference hairstyle image or the client's original color.
- The color should complement the client's skin undertone.`

// BuildHairstyle は合成リクエスト用のプロンプトを組み立てます。
// style/color が nil の場合、その項目は埋め込まれません。
// color がセンチネル（染めない）の場合は既定の色指示になります。
func BuildHairstyle(style *domain.StyleInfo, color *domain.ColorInfo) string {
	sections := []string{promptHeader}

	if ctx := styleContext(style, color); ctx != "" {
		sections = append(sections, ctx)
	}

	sections = append(sections,
		promptTask,
		"## CRITICAL RULES",
		ruleIdentity,
		ruleFaceShape,
		ruleBlending,
		colorSection(color),
		ruleLighting,
		promptOutput,
	)
	return strings.Join(sections, "\n\n")
}

func styleContext(style *domain.StyleInfo, color *domain.ColorInfo) string {
	var lines []string
	if style != nil {
		lines = append(lines,
			fmt.Sprintf("The requested hairstyle is \"%s\" (%s).", style.NameKo, style.Name),
			"Style characteristics: "+style.Description,
		)
		if len(style.Tags) > 0 {
			lines = append(lines, "Style keywords: "+strings.Join(style.Tags, ", "))
		}
		lines = append(lines, "Client gender: "+style.Gender.Label())
	}
	if !color.KeepsOriginal() {
		lines = append(lines,
			fmt.Sprintf("Hair color requested: \"%s\" (%s)", color.NameKo, color.Name),
			"Color details: "+color.Description,
		)
	}
	return strings.Join(lines, "\n")
}

func colorSection(color *domain.ColorInfo) string {
	if color.KeepsOriginal() {
		return colorKeepOriginal
	}

	var b strings.Builder
	b.WriteString("### 4. Hair Color\n")
	fmt.Fprintf(&b, "- IMPORTANT: Apply the requested hair color \"%s\" to the hairstyle.\n", color.NameKo)
	fmt.Fprintf(&b, "- Color specification: %s\n", color.Description)
	b.WriteString("- The color must look like a professional salon dye job: even, glossy and well blended.\n")
	b.WriteString("- Natural gradation: slightly darker at the roots, richer through the mid-lengths, natural light reflection.\n")
	b.WriteString("- For highlight or two-tone colors, blend the transitions seamlessly.\n")
	b.WriteString("- The color must complement the client's skin undertone.")
	return b.String()
}
