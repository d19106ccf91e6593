package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/kozaktomas/photo-booth/internal/compositor"
	"github.com/kozaktomas/photo-booth/internal/config"
	"github.com/kozaktomas/photo-booth/internal/layout"
)

// CompositeHandler handles the compositing endpoints.
type CompositeHandler struct {
	config *config.Config
}

// NewCompositeHandler creates a new composite handler.
func NewCompositeHandler(cfg *config.Config) *CompositeHandler {
	return &CompositeHandler{config: cfg}
}

// readPhotoFiles reads the multipart photo payloads, preserving the order
// the UI captured them in.
func readPhotoFiles(files []*multipart.FileHeader) ([][]byte, error) {
	payloads := make([][]byte, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fh.Filename, err)
		}
		payloads = append(payloads, data)
	}
	return payloads, nil
}

// gridFromForm resolves the requested layout from either a catalog id or
// explicit cols/rows values.
func gridFromForm(r *http.Request) (layout.Grid, error) {
	if id := r.FormValue("grid"); id != "" {
		g, ok := layout.Lookup(id)
		if !ok {
			return layout.Grid{}, fmt.Errorf("unknown layout %q", id)
		}
		return g, nil
	}
	cols, err := strconv.Atoi(r.FormValue("cols"))
	if err != nil || cols <= 0 {
		return layout.Grid{}, fmt.Errorf("invalid cols %q", r.FormValue("cols"))
	}
	rows, err := strconv.Atoi(r.FormValue("rows"))
	if err != nil || rows <= 0 {
		return layout.Grid{}, fmt.Errorf("invalid rows %q", r.FormValue("rows"))
	}
	return layout.Grid{Cols: cols, Rows: rows}, nil
}

// optionsFromForm applies optional dpi/margin/max_cell_width overrides on
// top of the configured defaults.
func (h *CompositeHandler) optionsFromForm(r *http.Request) (compositor.Options, error) {
	opts := compositor.Options{
		DPI:           h.config.Compositor.DPI,
		MarginPercent: h.config.Compositor.MarginPercent,
		Quality:       h.config.Compositor.JPEGQuality,
	}
	if v := r.FormValue("dpi"); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil || dpi <= 0 {
			return opts, fmt.Errorf("invalid dpi %q", v)
		}
		opts.DPI = dpi
	}
	if v := r.FormValue("margin"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil || m < 0 {
			return opts, fmt.Errorf("invalid margin %q", v)
		}
		opts.MarginPercent = m
	}
	if v := r.FormValue("max_cell_width"); v != "" {
		mcw, err := strconv.ParseFloat(v, 64)
		if err != nil || mcw <= 0 {
			return opts, fmt.Errorf("invalid max_cell_width %q", v)
		}
		opts.MaxCellWidthIn = mcw
	}
	return opts, nil
}

// respondComposite writes the composite as JPEG or, when format=pdf is
// requested, as a single-page print PDF.
func (h *CompositeHandler) respondComposite(w http.ResponseWriter, r *http.Request, composite []byte, page layout.PageSize) {
	w.Header().Set("X-Composite-ID", uuid.NewString())
	if r.FormValue("format") == "pdf" {
		w.Header().Set("Content-Type", "application/pdf")
		if err := compositor.WritePDF(w, composite, page); err != nil {
			log.Printf("writing pdf response: %v", err)
		}
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(composite)
}

// Create composes an N-cell grid from the uploaded photos.
func (h *CompositeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.config.Web.MaxUploadBytes()); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "no photos provided")
		return
	}

	grid, err := gridFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := h.optionsFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payloads, err := readPhotoFiles(files)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	composite, err := compositor.Compose(r.Context(), payloads, grid, opts)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondComposite(w, r, composite, layout.ResolvePageSize(&grid))
}

// CreateStrip composes the 4-photo duplicated strip.
func (h *CompositeHandler) CreateStrip(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.config.Web.MaxUploadBytes()); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "no photos provided")
		return
	}

	opts, err := h.optionsFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payloads, err := readPhotoFiles(files)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	composite, err := compositor.ComposeStrip(r.Context(), payloads, opts)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondComposite(w, r, composite, layout.DefaultPageSize())
}

// ExtractStrip crops the left 2x6in half out of an uploaded strip composite.
func (h *CompositeHandler) ExtractStrip(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.config.Web.MaxUploadBytes()); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, _, err := r.FormFile("composite")
	if err != nil {
		respondError(w, http.StatusBadRequest, "composite file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read composite")
		return
	}

	dpi := h.config.Compositor.DPI
	if v := r.FormValue("dpi"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d <= 0 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid dpi %q", v))
			return
		}
		dpi = d
	}

	strip, err := compositor.ExtractLeftStrip(data, dpi, h.config.Compositor.JPEGQuality)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(strip)
}
