package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gadgeski/Docker-Assignment1/pkg/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State int32

const (
	UNBOUND State = iota
	LISTENING
	CLOSED
)

func (s State) String() string {
	switch s {
	case UNBOUND:
		return "UNBOUND"
	case LISTENING:
		return "LISTENING"
	case CLOSED:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

type Server struct {
	address string
	config  Config
	routes  *RouteTable
	http    *http.Server

	mu       sync.Mutex
	state    State
	listener net.Listener
}

func NewServer(cfg Config) *Server {
	srv := &Server{
		address: "0.0.0.0:" + strconv.Itoa(cfg.Port),
		config:  cfg,
		routes:  NewGreetingRoutes(cfg.Greeting),
	}
	srv.http = &http.Server{
		Handler:  srv,
		ErrorLog: logging.StdLogger(),
	}
	return srv
}

// Start binds the listener and serves until the server is shut down.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Listen binds the configured port and moves the server to LISTENING.
// Failures are reported as *BindError.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case LISTENING:
		return ErrAlreadyListening
	case CLOSED:
		return ErrServerClosed
	}
	if s.config.Port < 1 || s.config.Port > 65535 {
		return &BindError{Addr: s.address, Err: ErrInvalidPort}
	}

	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return &BindError{Addr: s.address, Err: err}
	}
	s.listener = ln
	s.state = LISTENING

	logging.Info("greeting server listening",
		zap.String("url", s.urlLocked()),
		zap.String("address", ln.Addr().String()),
	)
	return nil
}

// Serve blocks accepting connections. It returns nil once Shutdown has been
// called.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	state := s.state
	s.mu.Unlock()

	switch state {
	case UNBOUND:
		return ErrNotListening
	case CLOSED:
		return nil
	}
	err := s.http.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Run serves until ctx is done, then shuts down gracefully within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down greeting server",
		zap.Duration("timeout", s.config.ShutdownTimeout),
	)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return <-errCh
}

// Shutdown stops accepting connections and waits for in-flight requests.
// A closed server can not be started again.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	prev := s.state
	ln := s.listener
	s.state = CLOSED
	s.mu.Unlock()

	if prev != LISTENING {
		return nil
	}
	err := s.http.Shutdown(ctx)
	// Serve may not have taken ownership of the listener yet.
	if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
		err = cerr
	}
	logging.Info("greeting server stopped")
	return err
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.urlLocked()
}

func (s *Server) urlLocked() string {
	port := s.config.Port
	if s.listener != nil {
		if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
			port = addr.Port
		}
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := s.routes.Dispatch(Request{
		Method: r.Method,
		Path:   r.URL.Path,
	})

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		logging.Warn("failed to write response",
			zap.String("remote_address", r.RemoteAddr),
			zap.Error(err),
		)
	}

	logging.Debug("request handled",
		zap.String("request_id", uuid.NewString()),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("remote_address", r.RemoteAddr),
	)
}
