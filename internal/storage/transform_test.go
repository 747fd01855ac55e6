package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTransformImage_CapsLargeDimensions(t *testing.T) {
	data := encodePNG(t, 1200, 800)

	out, contentType := transformImage(data)

	assert.Equal(t, "image/jpeg", contentType)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1000, img.Bounds().Dx())
	// aspect ratio preserved: 800 * (1000/1200)
	assert.Equal(t, 666, img.Bounds().Dy())
}

func TestTransformImage_CapsByHeightWhenTaller(t *testing.T) {
	data := encodePNG(t, 500, 2000)

	out, _ := transformImage(data)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1000, img.Bounds().Dy())
	assert.Equal(t, 250, img.Bounds().Dx())
}

func TestTransformImage_SmallImageKeepsDimensions(t *testing.T) {
	data := encodePNG(t, 300, 200)

	out, contentType := transformImage(data)

	assert.Equal(t, "image/jpeg", contentType)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestTransformImage_NonImagePassesThrough(t *testing.T) {
	data := []byte("definitely not an image")

	out, contentType := transformImage(data)

	assert.Equal(t, data, out)
	assert.NotEqual(t, "image/jpeg", contentType)
}

func TestStorageKey(t *testing.T) {
	key := storageKey("blog_images")

	assert.True(t, strings.HasPrefix(key, "blog_images/"))
	// folder + year/month/day + object id
	assert.Len(t, strings.Split(key, "/"), 5)
}

func TestPublicURL(t *testing.T) {
	u := &S3Uploader{bucket: "media", region: "us-east-1"}
	assert.Equal(t,
		"https://media.s3.us-east-1.amazonaws.com/blog_images/x",
		u.publicURL("blog_images/x"))

	u = &S3Uploader{bucket: "media", endpoint: "http://127.0.0.1:9000/"}
	assert.Equal(t,
		"http://127.0.0.1:9000/media/blog_images/x",
		u.publicURL("blog_images/x"))
}
