package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/custodia-labs/onebox/internal/core/ports/driving"
	"github.com/custodia-labs/onebox/internal/logger"
)

// DefaultPath is where the OneBox handler is mounted.
const DefaultPath = "/onebox"

// Options configures the HTTP server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// RateLimit is the sustained request rate allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64
	Burst     int
}

// Server serves OneBox queries over HTTP.
type Server struct {
	opts    Options
	handler http.Handler
}

// NewServer creates a server in front of dispatcher.
func NewServer(dispatcher driving.Dispatcher, opts Options) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var onebox http.Handler = NewHandler(dispatcher)
	if opts.RateLimit > 0 {
		onebox = withRateLimit(newClientLimiter(opts.RateLimit, opts.Burst), dispatcher, onebox)
	}
	mux.Handle(DefaultPath, onebox)
	mux.Handle(DefaultPath+"/", onebox)

	return &Server{
		opts:    opts,
		handler: withRequestID(withLogging(withRecovery(mux))),
	}
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("OneBox listening on %s%s", ln.Addr(), DefaultPath)
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
