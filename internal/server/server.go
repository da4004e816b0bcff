package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/janpfeifer/MemoryMatch/internal/frontend"
	"github.com/janpfeifer/MemoryMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// ServerState describes a running server.
type ServerState struct {
	// Address the server is listening on, as host:port.
	Address string
	Config  Config
}

// NewHandler returns the HTTP handler: health check, static assets and the
// go-app UI.
func NewHandler(cfg Config) http.Handler {
	// Initialize global frontend state for server-side prerendering without panic
	frontend.InitState()

	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Home{} })

	// The compiled webassembly and the app resources are served natively by
	// the go-app framework.
	h := &app.Handler{
		Name:        "Memory Match",
		Title:       "Memory Match",
		Description: "A memory matching card game",
		Version:     game.Version,
		Styles: []string{
			"/web/css/pico.min.css", // Load pico.css
			"/web/css/main.css",     // Board, cards and layout
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = fmt.Fprintf(w, `{"ok":true,"version":%q}`, game.Version)
	})
	r.Handle("/web/*", http.StripPrefix("/web/", http.FileServer(http.Dir(cfg.WebDir))))
	r.Handle("/*", h)
	return r
}

// Run starts the server and blocks until the context is canceled.
// If started is not nil, the ServerState is sent to it once the server is listening.
func Run(ctx context.Context, cfg Config, started chan<- *ServerState) error {
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}

	srv := &http.Server{Handler: NewHandler(cfg)}
	state := &ServerState{Address: listener.Addr().String(), Config: cfg}

	serveErr := make(chan error, 1)
	go func() {
		klog.Infof("Server started on %s (web dir %q)", state.Address, cfg.WebDir)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	if started != nil {
		started <- state
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	klog.Infof("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
