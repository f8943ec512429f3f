package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用のダミー画像を作成するヘルパー
// 左半分を left、右半分を right で塗ります。
func createSplitImageData(t *testing.T, format string, w, h int, left, right color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if x < w/2 {
				img.Set(x, y, left)
			} else {
				img.Set(x, y, right)
			}
		}
	}

	buf := new(bytes.Buffer)
	var err error
	switch format {
	case "png":
		err = png.Encode(buf, img)
	case "jpeg":
		err = jpeg.Encode(buf, img, nil)
	default:
		t.Fatalf("unsupported format: %s", format)
	}
	require.NoError(t, err, "failed to encode dummy image")
	return buf.Bytes()
}

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestCompressToJPEG(t *testing.T) {
	t.Run("正常なPNG画像をJPEGに圧縮できること", func(t *testing.T) {
		pngData := createSplitImageData(t, "png", 10, 10, red, red)

		got, err := CompressToJPEG(pngData, 75)
		require.NoError(t, err)
		require.NotEmpty(t, got)

		_, format, err := image.Decode(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("不正なデータを与えた場合にエラーを返すこと", func(t *testing.T) {
		_, err := CompressToJPEG([]byte("this is not an image"), 75)
		assert.Error(t, err)
	})

	t.Run("透過PNGは白背景になること", func(t *testing.T) {
		transparent := createSplitImageData(t, "png", 8, 8, color.RGBA{}, color.RGBA{})
		got, err := CompressToJPEG(transparent, 90)
		require.NoError(t, err)

		img, _, err := image.Decode(bytes.NewReader(got))
		require.NoError(t, err)
		r, g, b, _ := img.At(4, 4).RGBA()
		assert.Greater(t, r>>8, uint32(240))
		assert.Greater(t, g>>8, uint32(240))
		assert.Greater(t, b>>8, uint32(240))
	})
}

func TestCompressToJPEG_RejectsHugeDimensions(t *testing.T) {
	_, err := CompressToJPEG(pngHeaderOnly(8000, 8000), 75)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestDownscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))

	t.Run("長辺に合わせて縮小する", func(t *testing.T) {
		out := Downscale(img, 100)
		assert.Equal(t, 100, out.Bounds().Dx())
		assert.Equal(t, 50, out.Bounds().Dy())
	})

	t.Run("小さい画像はそのまま", func(t *testing.T) {
		assert.Same(t, img, Downscale(img, 1000))
		assert.Same(t, img, Downscale(img, 0))
	})
}
