package generator

const (
	// DefaultModel は画像+テキストの混在応答に対応したモデルです。
	DefaultModel            = "gemini-2.5-flash-image"
	ImageCompressionQuality = 75
	cacheKeyReference       = "reference:"
	unknownFinishReason     = "unknown"
)

// responseModalities は画像とテキストの混在応答を要求します。
var responseModalities = []string{"IMAGE", "TEXT"}
