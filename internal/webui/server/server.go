// Package server exposes a terminal session over HTTP: a WebSocket
// endpoint bridging raw bytes to and from the PTY, and a JSON snapshot of
// the emulated screen for inspection.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenatx/nart/internal/config"
	"github.com/thenatx/nart/internal/system"
)

// Server hosts the HTTP surface. Settings may be swapped at runtime (the
// serve command wires a config watcher in); new sessions pick up the
// latest value.
type Server struct {
	Addr string

	mu       sync.Mutex
	settings config.Settings
	bridge   *bridge
}

// New returns a server bound to addr with the given initial settings.
func New(addr string, settings config.Settings) *Server {
	return &Server{Addr: addr, settings: settings}
}

// SetSettings replaces the settings used for newly opened sessions.
func (s *Server) SetSettings(settings config.Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	system.Logger.Info("settings reloaded")
}

func (s *Server) currentSettings() config.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Start runs the server until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	s.mountAPI(r)

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("terminal bridge listening", "addr", s.Addr)
	return srv.ListenAndServe()
}
