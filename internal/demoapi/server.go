package demoapi

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Run serves the demo API and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, addr string, server *Server) error {
	httpSrv := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
