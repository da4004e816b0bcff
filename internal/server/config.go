package server

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"
)

// Config of the HTTP server.
type Config struct {
	// Addr to listen on. Empty picks a free port on localhost.
	Addr string

	// WebDir holds the static assets served under /web/ (app.wasm, css, images, sounds).
	WebDir string

	// ShutdownTimeout bounds the graceful shutdown once the context is cancelled.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Addr:            "",
		WebDir:          "web",
		ShutdownTimeout: 5 * time.Second,
	}
}

// ConfigFromEnv loads the given .env files (missing files are ignored) and
// overlays MEMORY_ADDR, MEMORY_WEB_DIR and MEMORY_SHUTDOWN_TIMEOUT on top of
// DefaultConfig. With no files, ".env" is tried.
func ConfigFromEnv(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				klog.V(1).Infof("ConfigFromEnv: %s not found, skipping", f)
				continue
			}
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	if v, ok := os.LookupEnv("MEMORY_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("MEMORY_WEB_DIR"); ok && v != "" {
		cfg.WebDir = v
	}
	if v, ok := os.LookupEnv("MEMORY_SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MEMORY_SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}
