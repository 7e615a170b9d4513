package node

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/SystemBuilders/chains/internal/containerservice"
	"github.com/SystemBuilders/chains/internal/routing"
)

const shutdownTimeout = 10 * time.Second

// Start runs the container service as a http server until ctx is done,
// then shuts the server down gracefully.
func Start(ctx context.Context, cs *containerservice.SimpleContainerService, cfg Config, log zerolog.Logger) error {
	if err := checkValidPort(cfg.Port()); err != nil {
		return err
	}

	router := mux.NewRouter()

	router = routing.SetupRouting(cs, router)

	server := &http.Server{
		Handler: router,
		Addr:    net.JoinHostPort(cfg.IP(), cfg.Port()),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		gracefulShutdown(ctx, server, log)
	}()

	log.Info().Str("addr", server.Addr).Msg("starting server")
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	cancel()
	<-done
	return err
}

// gracefulShutdown shuts down the server once ctx is done.
func gracefulShutdown(ctx context.Context, server *http.Server, log zerolog.Logger) {
	<-ctx.Done()

	// Create a deadline to wait for currently serving items.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}

	log.Info().Msg("shutting down")
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if portInt < 0 || portInt > 65535 {
		return errors.New("port number must be between 0 and 65535")
	}
	return nil
}
