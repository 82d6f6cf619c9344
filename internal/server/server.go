package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Server wraps a Handler with an http.Server.
type Server struct {
	server   *http.Server
	listener net.Listener
}

// Config configures a Server.
type Config struct {
	// Addr is the listen address, e.g. ":8080". Port 0 picks a free port.
	Addr    string
	Handler *Handler
	// ReadTimeout bounds reading a request. Defaults to 30s.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing a response. Defaults to 30s.
	WriteTimeout time.Duration
}

// New binds the listener so the port is known before Start.
func New(cfg Config) (*Server, error) {
	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 30 * time.Second
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 30 * time.Second
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	return &Server{
		listener: listener,
		server: &http.Server{
			Handler:           cfg.Handler.Routes(),
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      writeTimeout,
		},
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves until Shutdown. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
