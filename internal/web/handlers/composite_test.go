package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompositeCreate(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/composites",
		map[string]string{"grid": "4x6-4up"},
		fourPhotoParts(t),
	)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected Content-Type image/jpeg, got %q", ct)
	}
	if rec.Header().Get("X-Composite-ID") == "" {
		t.Error("expected X-Composite-ID header")
	}

	w, h2 := decodeSize(t, rec.Body.Bytes())
	if w != 1206 || h2 != 1806 {
		t.Errorf("expected 1206x1806 composite, got %dx%d", w, h2)
	}
}

func TestCompositeCreate_ExplicitDimensions(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/composites",
		map[string]string{"cols": "2", "rows": "2"},
		fourPhotoParts(t),
	)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	w, h2 := decodeSize(t, rec.Body.Bytes())
	if w != 1206 || h2 != 1806 {
		t.Errorf("expected 1206x1806 composite, got %dx%d", w, h2)
	}
}

func TestCompositeCreate_PDF(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/composites",
		map[string]string{"grid": "4x6-4up", "format": "pdf"},
		fourPhotoParts(t),
	)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected Content-Type application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body is not a PDF")
	}
}

func TestCompositeCreate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		wantStatus int
	}{
		{
			name:       "unknown layout",
			fields:     map[string]string{"grid": "nope"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing grid and dimensions",
			fields:     map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid dpi",
			fields:     map[string]string{"grid": "4x6-4up", "dpi": "-1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "photo count mismatch",
			fields:     map[string]string{"grid": "4x6-2up"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := NewCompositeHandler(testConfig())

			req := multipartRequest(t, "/api/v1/composites", test.fields, fourPhotoParts(t))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d: %s", test.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCompositeCreate_NoPhotos(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/composites",
		map[string]string{"grid": "4x6-4up"},
		nil,
	)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestCompositeCreate_UndecodablePhoto(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	files := fourPhotoParts(t)
	files[2].data = []byte("not an image")
	req := multipartRequest(t, "/api/v1/composites",
		map[string]string{"grid": "4x6-4up"},
		files,
	)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateStrip(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/composites/strip", nil, fourPhotoParts(t))
	rec := httptest.NewRecorder()
	h.CreateStrip(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	w, h2 := decodeSize(t, rec.Body.Bytes())
	if w != 1200 || h2 != 1800 {
		t.Errorf("expected 1200x1800 strip page, got %dx%d", w, h2)
	}
}

func TestCreateStrip_WrongCount(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/composites/strip", nil, fourPhotoParts(t)[:2])
	rec := httptest.NewRecorder()
	h.CreateStrip(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestExtractStrip(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	// Compose a strip page first, then extract its left half.
	composeReq := multipartRequest(t, "/api/v1/composites/strip", nil, fourPhotoParts(t))
	composeRec := httptest.NewRecorder()
	h.CreateStrip(composeRec, composeReq)
	if composeRec.Code != http.StatusOK {
		t.Fatalf("strip compose failed: %d %s", composeRec.Code, composeRec.Body.String())
	}
	composite, err := io.ReadAll(composeRec.Body)
	if err != nil {
		t.Fatalf("reading strip composite: %v", err)
	}

	req := multipartRequest(t, "/api/v1/strips/extract", nil, []filePart{
		{field: "composite", name: "composite.jpg", data: composite},
	})
	rec := httptest.NewRecorder()
	h.ExtractStrip(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected Content-Type image/jpeg, got %q", ct)
	}

	w, h2 := decodeSize(t, rec.Body.Bytes())
	if w != 600 || h2 != 1800 {
		t.Errorf("expected 600x1800 preview, got %dx%d", w, h2)
	}
}

func TestExtractStrip_MissingFile(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/strips/extract", map[string]string{"dpi": "300"}, nil)
	rec := httptest.NewRecorder()
	h.ExtractStrip(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestExtractStrip_Undecodable(t *testing.T) {
	h := NewCompositeHandler(testConfig())

	req := multipartRequest(t, "/api/v1/strips/extract", nil, []filePart{
		{field: "composite", name: "composite.jpg", data: []byte("garbage")},
	})
	rec := httptest.NewRecorder()
	h.ExtractStrip(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d: %s", rec.Code, rec.Body.String())
	}
}
