package imgutil

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// CaptureOptions はカメラ撮影画像の正規化オプションです。
type CaptureOptions struct {
	Mirror  bool // フロントカメラの鏡像補正
	MaxSide int  // 0 以下なら縮小しない
	Quality int
}

// PrepareCapture はカメラ撮影画像を中央の正方形で切り出し、
// 必要なら縮小・左右反転して JPEG で返します。
func PrepareCapture(data []byte, opts CaptureOptions) ([]byte, error) {
	img, err := decodeBounded(data)
	if err != nil {
		return nil, fmt.Errorf("撮影画像のデコードに失敗しました: %w", err)
	}

	// 反転は縮小後の小さい画像に対して行う
	var out image.Image = centerSquare(img)
	out = Downscale(out, opts.MaxSide)
	if opts.Mirror {
		out = mirrorHorizontal(out)
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = 90
	}
	return encodeJPEG(out, quality)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// centerSquare は中央の正方形領域を返します。可能な限りピクセルをコピーしません。
func centerSquare(img image.Image) image.Image {
	b := img.Bounds()
	size := min(b.Dx(), b.Dy())
	sx := b.Min.X + (b.Dx()-size)/2
	sy := b.Min.Y + (b.Dy()-size)/2
	rect := image.Rect(sx, sy, sx+size, sy+size)

	if s, ok := img.(subImager); ok {
		return s.SubImage(rect)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Copy(dst, image.Point{}, img, rect, xdraw.Src, nil)
	return dst
}

// mirrorHorizontal は左右反転した RGBA 画像を返します。
func mirrorHorizontal(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)

	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			lp, rp := row[l*4:l*4+4], row[r*4:r*4+4]
			for i := 0; i < 4; i++ {
				lp[i], rp[i] = rp[i], lp[i]
			}
		}
	}
	return dst
}
