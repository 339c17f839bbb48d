package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Lado máximo da foto armazenada; acima disso a imagem é reduzida
	maxPhotoDim = 800

	webpQuality = 85
)

// NormalizePhoto decodifica JPEG/PNG, reduz para no máximo maxPhotoDim e
// reencoda em webp. O storefront só serve webp.
func NormalizePhoto(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxPhotoDim && h <= maxPhotoDim {
		return src
	}

	if w >= h {
		h = h * maxPhotoDim / w
		w = maxPhotoDim
	} else {
		w = w * maxPhotoDim / h
		h = maxPhotoDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
