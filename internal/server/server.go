package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/username/time-tally/internal/config"
	"github.com/username/time-tally/internal/metrics"
)

const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 10 * time.Second
)

// Server runs the API listener and, when enabled, the metrics listener
type Server struct {
	api     *http.Server
	metrics *http.Server
	logger  *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc

	mu        sync.Mutex
	apiLn     net.Listener
	metricsLn net.Listener
}

// New creates a server for the given API handler
func New(cfg *config.Config, handler http.Handler, logger *zap.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		api: &http.Server{
			Addr:              cfg.APIAddr(),
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	if cfg.Metrics {
		router := chi.NewRouter()
		router.Handle("/metrics", metrics.Handler())
		s.metrics = &http.Server{
			Addr:              cfg.MetricsAddr(),
			Handler:           router,
			ReadHeaderTimeout: ReadHeaderTimeout,
		}
	}

	return s
}

// Start binds the listeners and serves until a signal arrives or Stop is called
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Run is Start that also stops when ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, s.Stop)
	defer stop()
	return s.Start()
}

// Listen binds the configured addresses without serving
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apiLn, err := net.Listen("tcp", s.api.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind API listener on %s: %w", s.api.Addr, err)
	}
	s.apiLn = apiLn

	if s.metrics != nil {
		metricsLn, err := net.Listen("tcp", s.metrics.Addr)
		if err != nil {
			apiLn.Close()
			return fmt.Errorf("failed to bind metrics listener on %s: %w", s.metrics.Addr, err)
		}
		s.metricsLn = metricsLn
	}

	return nil
}

// Serve blocks until shutdown. Listen must have succeeded first.
func (s *Server) Serve() error {
	s.mu.Lock()
	apiLn, metricsLn := s.apiLn, s.metricsLn
	s.mu.Unlock()

	if apiLn == nil {
		return errors.New("server is not listening")
	}

	errCh := make(chan error, 2)

	s.logger.Info("API listener started", zap.String("addr", apiLn.Addr().String()))
	go s.serve(s.api, apiLn, "api", errCh)

	if metricsLn != nil {
		s.logger.Info("Metrics listener started", zap.String("addr", metricsLn.Addr().String()))
		go s.serve(s.metrics, metricsLn, "metrics", errCh)
	}

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case <-s.ctx.Done():
		s.logger.Info("Server stop requested")

	case sig := <-sigChan:
		s.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))

	case runErr = <-errCh:
		s.logger.Error("Listener failed, shutting down", zap.Error(runErr))
	}

	if err := s.shutdown(); err != nil && runErr == nil {
		runErr = err
	}

	s.logger.Info("Server stopped")
	return runErr
}

// Stop asks a running Serve to shut down
func (s *Server) Stop() {
	s.cancel()
}

// APIAddr returns the bound API address, or the configured one before Listen
func (s *Server) APIAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.apiLn != nil {
		return s.apiLn.Addr().String()
	}
	return s.api.Addr
}

// MetricsAddr returns the bound metrics address, empty when metrics are disabled
func (s *Server) MetricsAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.metricsLn != nil:
		return s.metricsLn.Addr().String()
	case s.metrics != nil:
		return s.metrics.Addr
	default:
		return ""
	}
}

func (s *Server) serve(srv *http.Server, ln net.Listener, name string, errCh chan<- error) {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- fmt.Errorf("%s listener: %w", name, err)
	}
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.api.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("api shutdown: %w", err))
	}
	if s.metrics != nil {
		if err := s.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
