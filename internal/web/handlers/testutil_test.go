package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/kozaktomas/photo-booth/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Compositor: config.CompositorConfig{
			DPI:           300,
			MarginPercent: 2,
			JPEGQuality:   95,
		},
		Web: config.WebConfig{
			Port:        8080,
			Host:        "127.0.0.1",
			MaxUploadMB: 32,
		},
	}
}

func jpegPhoto(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, imaging.New(w, h, c), nil); err != nil {
		t.Fatalf("encoding test photo: %v", err)
	}
	return buf.Bytes()
}

type filePart struct {
	field string
	name  string
	data  []byte
}

// multipartRequest builds a multipart POST with the given form fields and
// file parts, in order.
func multipartRequest(t *testing.T, url string, fields map[string]string, files []filePart) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("writing form field %s: %v", key, err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("creating form file %s: %v", f.name, err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("writing form file %s: %v", f.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding response image: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func fourPhotoParts(t *testing.T) []filePart {
	t.Helper()
	colors := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, A: 255},
	}
	parts := make([]filePart, len(colors))
	for i, c := range colors {
		parts[i] = filePart{
			field: "photos",
			name:  "photo.jpg",
			data:  jpegPhoto(t, 800, 600, c),
		}
	}
	return parts
}
