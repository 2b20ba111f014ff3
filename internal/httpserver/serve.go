package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mtavares/gatekeeper/internal/logutil"
)

// Serve runs handler on bind until ctx is cancelled, then drains open
// connections before returning. The first listener error, if any, is
// returned.
func Serve(ctx context.Context, bind string, handler http.Handler) error {
	server := http.Server{
		Handler:           handler,
		Addr:              bind,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: time.Second * 30,
		IdleTimeout:       time.Minute * 5,
	}
	log := logutil.GetOrDefault(ctx).With().Str("server.addr", server.Addr).Logger()

	firstErr := make(chan error, 1)
	listenerDone := make(chan struct{})
	go func() {
		defer close(listenerDone)
		log.Info().Msg("Starting HTTP server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			firstErr <- err
		}
	}()

	select {
	case <-listenerDone:
	case <-ctx.Done():
		log.Info().Msg("Initiating shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		server.Shutdown(shutdownCtx)
		<-listenerDone
		log.Info().Msg("Shutdown completed")
	}
	select {
	case err := <-firstErr:
		return err
	default:
		return nil
	}
}
