// Package server собирает HTTP API: маршруты, middleware и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/blogful/internal/server/auth"
	"github.com/iudanet/blogful/internal/server/config"
	"github.com/iudanet/blogful/internal/server/handlers"
	"github.com/iudanet/blogful/internal/server/middleware"
	"github.com/iudanet/blogful/internal/server/storage"
)

// ShutdownTimeout время на завершение активных запросов
const ShutdownTimeout = 10 * time.Second

// Server HTTP сервер API
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// NewRouter регистрирует маршруты API
func NewRouter(logger *slog.Logger, store storage.Storage, issuer *auth.TokenIssuer, version string) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, auth.NewService(store, issuer))
	userHandler := handlers.NewUserHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	requireAuth := middleware.AuthMiddleware(logger, issuer)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.Handle("GET /api/users/me", requireAuth(http.HandlerFunc(userHandler.Me)))

	// Цепочка: logging -> recovery -> mux, паника попадает в access log как 500
	var handler http.Handler = mux
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/health"})(handler)

	return handler
}

// New создает сервер по конфигурации
func New(cfg *config.Config, logger *slog.Logger, store storage.Storage, version string) *Server {
	issuer := auth.NewTokenIssuer(auth.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	})

	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              cfg.ServerAddress,
			Handler:           NewRouter(logger, store, issuer, version),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}
}

// Run слушает адрес из конфигурации до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln и корректно завершает работу при отмене ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server started", slog.String("address", ln.Addr().String()))
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
