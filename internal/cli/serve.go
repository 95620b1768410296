package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/devsession/internal/adapters/http"
)

const shutdownTimeout = 5 * time.Second

// RunServe serves the HTTP API on addr until ctx is canceled.
func RunServe(ctx context.Context, svc *Service, addr string, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, svc, ln, logger)
}

// Serve serves the HTTP API on ln until ctx is canceled, then shuts down gracefully.
func Serve(ctx context.Context, svc *Service, ln net.Listener, logger *slog.Logger) error {
	opts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
	if p, ok := svc.Backend.(httpAdapter.Pinger); ok {
		opts = append(opts, httpAdapter.WithPinger(p))
	}
	if svc.Registry != nil {
		opts = append(opts, httpAdapter.WithGatherer(svc.Registry))
	}

	srv := &http.Server{
		Handler:           httpAdapter.NewHandler(svc.Cache, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting session cache server", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Shutting down session cache server")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
