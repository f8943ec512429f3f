package imgutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDataURIPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"png", "data:image/png;base64,AAAA", "AAAA"},
		{"webp", "data:image/webp;base64,QUJD", "QUJD"},
		{"プレフィックス無し", "QUJD", "QUJD"},
		{"前後の空白", "  data:image/jpeg;base64,QUJD\n", "QUJD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripDataURIPrefix(tt.in))
		})
	}
}

func TestMIMEFromDataURI(t *testing.T) {
	assert.Equal(t, "image/png", MIMEFromDataURI("data:image/png;base64,AAAA", DefaultInputMIME))
	assert.Equal(t, "image/svg+xml", MIMEFromDataURI("data:image/svg+xml;base64,AAAA", DefaultInputMIME))
	assert.Equal(t, DefaultInputMIME, MIMEFromDataURI("AAAA", DefaultInputMIME))
	assert.Equal(t, DefaultInputMIME, MIMEFromDataURI("data:;base64,AAAA", DefaultInputMIME))
}

func TestDecodeDataURI(t *testing.T) {
	t.Run("data URI を分解できる", func(t *testing.T) {
		data, mimeType, err := DecodeDataURI("data:image/webp;base64,QUJD", DefaultInputMIME)
		require.NoError(t, err)
		assert.Equal(t, []byte("ABC"), data)
		assert.Equal(t, "image/webp", mimeType)
	})

	t.Run("生の base64 は既定 MIME になる", func(t *testing.T) {
		data, mimeType, err := DecodeDataURI("QUJD", DefaultInputMIME)
		require.NoError(t, err)
		assert.Equal(t, []byte("ABC"), data)
		assert.Equal(t, DefaultInputMIME, mimeType)
	})

	t.Run("パディング無しも受け付ける", func(t *testing.T) {
		data, _, err := DecodeDataURI("QUI", DefaultInputMIME)
		require.NoError(t, err)
		assert.Equal(t, []byte("AB"), data)
	})

	t.Run("壊れた入力はエラー", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:image/png;base64,***", DefaultInputMIME)
		assert.True(t, errors.Is(err, ErrInvalidDataURI))

		_, _, err = DecodeDataURI("", DefaultInputMIME)
		assert.True(t, errors.Is(err, ErrInvalidDataURI))
	})
}

func TestEncodeDataURI(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,QUJD", EncodeDataURI("image/jpeg", []byte("ABC")))
	assert.Equal(t, "data:image/png;base64,QUJD", EncodeDataURI("", []byte("ABC")))
}

func TestDetectMIMEAndExtension(t *testing.T) {
	png := createSplitImageData(t, "png", 2, 2, red, blue)
	assert.Equal(t, "image/png", DetectMIME(png))
	assert.True(t, IsImageMIME(DetectMIME(png)))
	assert.False(t, IsImageMIME(DetectMIME([]byte("plain text"))))

	assert.Equal(t, "jpg", ExtensionForMIME("image/jpeg"))
	assert.Equal(t, "png", ExtensionForMIME("application/octet-stream"))
}
