package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"net/http"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Blog images are scaled down to fit inside maxDimension on both axes and
// re-encoded as JPEG to keep stored sizes bounded. Smaller images are only
// re-encoded.
const (
	maxDimension = 1000
	jpegQuality  = 80
)

func detectContentType(data []byte) string {
	return http.DetectContentType(data)
}

// transformImage applies the bounded blog-image transform. Buffers that do
// not decode as an image are passed through untouched: upstream only checks
// the declared MIME type, and that boundary is kept as-is here.
func transformImage(data []byte) ([]byte, string) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, detectContentType(data)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxDimension || h > maxDimension {
		scale := float64(maxDimension) / float64(w)
		if h > w {
			scale = float64(maxDimension) / float64(h)
		}
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return data, detectContentType(data)
	}

	return buf.Bytes(), "image/jpeg"
}
