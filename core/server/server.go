package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"greeting-server/core/loader"
	"greeting-server/core/middleware/rayid"
	"greeting-server/core/middleware/requestlog"
	"greeting-server/core/tracing"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Server wraps a fiber application bound to a single configured port.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	ln     net.Listener
}

// New builds the fiber app, installs the middleware chain and loads the given features.
// The configuration is captured here, before any listener exists.
func New(cfg Config, logg *zap.Logger, tp trace.TracerProvider, features ...loader.Feature) (*Server, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID must be first so every later log line and span can carry it
	app.Use(rayid.New())
	app.Use(tracing.Middleware(tp))
	app.Use(requestlog.New(logg))

	mgr := loader.NewManager()
	for _, f := range features {
		mgr.Register(f)
	}
	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}

	return &Server{
		cfg:    cfg,
		app:    app,
		logger: logg,
	}, nil
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Addr returns the bound address, or nil before Listen succeeded.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Listen opens the TCP listener. Any failure is reported as ErrBind.
func (s *Server) Listen() error {
	if !s.cfg.IsValidPort() {
		return fmt.Errorf("%w: port %d is out of range 0-65535", ErrBind, s.cfg.Port)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBind, err)
	}
	s.ln = ln
	return nil
}

// Serve accepts connections on the listener opened by Listen until ctx is cancelled,
// then shuts the app down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errors.New("serve called before listen")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(s.ln)
	}()

	s.logger.Info("Starting server",
		zap.Int("port", s.cfg.Port),
		zap.String("addr", s.ln.Addr().String()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	if err := s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	// Already closed when the app was serving; closes it if shutdown raced the accept loop.
	_ = s.ln.Close()
	return nil
}

// Start binds the listener and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}
