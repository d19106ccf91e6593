package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings loaded from the environment.
type Config struct {
	Compositor CompositorConfig
	Web        WebConfig
}

// CompositorConfig carries the compositing defaults. Per-request values
// from CLI flags or API form fields override these.
type CompositorConfig struct {
	DPI           int     // output resolution in dots per inch (default 300)
	MarginPercent float64 // inter-cell margin as % of the smaller cell side (default 2)
	JPEGQuality   int     // composite encode quality (default 95)
}

// WebConfig carries the HTTP API settings.
type WebConfig struct {
	Port        int    // listen port (default 8080)
	Host        string // bind address (default 0.0.0.0)
	MaxUploadMB int    // multipart upload cap in megabytes (default 32)
}

// MaxUploadBytes returns the multipart parse limit in bytes.
func (w WebConfig) MaxUploadBytes() int64 {
	return int64(w.MaxUploadMB) << 20
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
// Returns the default value if the env var is unset, empty, or invalid.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

// envString reads an environment variable, falling back to a default.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Compositor: CompositorConfig{
			DPI:           envInt("BOOTH_DPI", 300),
			MarginPercent: envFloat("BOOTH_MARGIN_PERCENT", 2),
			JPEGQuality:   envInt("BOOTH_JPEG_QUALITY", 95),
		},
		Web: WebConfig{
			Port:        envInt("WEB_PORT", 8080),
			Host:        envString("WEB_HOST", "0.0.0.0"),
			MaxUploadMB: envInt("WEB_MAX_UPLOAD_MB", 32),
		},
	}
}
