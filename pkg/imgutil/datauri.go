package imgutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"regexp"
	"strings"
)

const (
	// DefaultInputMIME は入力画像の MIME が判別できない場合に使います。
	DefaultInputMIME = "image/jpeg"
	// DefaultOutputMIME は応答パーツが MIME を報告しない場合に使います。
	DefaultOutputMIME = "image/png"
)

// ErrInvalidDataURI は画像データとして解釈できない入力を表します。
var ErrInvalidDataURI = errors.New("invalid image data")

var dataURIPattern = regexp.MustCompile(`^data:([a-zA-Z0-9.+-]+/[a-zA-Z0-9.+-]+)[^,]*,`)

// StripDataURIPrefix は "data:...;base64," を取り除いた base64 本体を返します。
// プレフィックスが無い場合は入力をそのまま返します。
func StripDataURIPrefix(value string) string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "data:") {
		return value
	}
	if idx := strings.IndexByte(value, ','); idx >= 0 {
		return value[idx+1:]
	}
	return value
}

// MIMEFromDataURI は data URI のプレフィックスから MIME を取り出します。
// 判別できない場合は fallback を返します。
func MIMEFromDataURI(value, fallback string) string {
	if m := dataURIPattern.FindStringSubmatch(strings.TrimSpace(value)); len(m) == 2 {
		return strings.ToLower(m[1])
	}
	return fallback
}

// DecodeDataURI は data URI（もしくは生の base64）をバイト列と MIME に分解します。
func DecodeDataURI(value, fallbackMIME string) ([]byte, string, error) {
	payload := StripDataURIPrefix(value)
	if payload == "" {
		return nil, "", fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// パディング無しの base64 も受け付ける
		if raw, rawErr := base64.RawStdEncoding.DecodeString(payload); rawErr == nil {
			data = raw
		} else {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
	}
	return data, MIMEFromDataURI(value, fallbackMIME), nil
}

// EncodeDataURI はバイト列を自己記述的な data URI に包み直します。
func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = DefaultOutputMIME
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DetectMIME はバイト列の先頭から MIME を推定します（パラメータは除去）。
func DetectMIME(data []byte) string {
	detected := http.DetectContentType(data)
	if mediaType, _, err := mime.ParseMediaType(detected); err == nil {
		return mediaType
	}
	return detected
}

// IsImageMIME は image/* かどうかを返します。
func IsImageMIME(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// ExtensionForMIME はダウンロード用の拡張子を返します。
func ExtensionForMIME(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
