package media

import (
	"bytes"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	jpegQuality = 80
	webpQuality = 80
)

// compressImage 解码、矫正方向、限宽缩放并重新编码。
// 输出编码按声明的输入类型选择：jpeg保持jpeg，png保持png，其余统一转webp。
func compressImage(data []byte, contentType string, maxWidth int) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", err
	}

	// 只缩小，不放大
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	switch contentType {
	case "image/jpeg", "image/jpg":
		if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	case "image/png":
		if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/png", nil
	default:
		if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/webp", nil
	}
}
