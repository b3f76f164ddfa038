// laban-stub runs the in-memory backend double for local development:
// the CLI and the integration tests talk to the same REST surface as the
// production backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"laban/internal/config"
	"laban/internal/stub"
)

func main() {
	seed := flag.Bool("seed", true, "charger le jeu de données de démonstration")
	flag.Parse()

	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store := stub.NewStore()
	if *seed {
		stub.Seed(store)
	}
	server := stub.NewServer(store, cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.StubPort),
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("laban stub backend listening on :%d", cfg.StubPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down stub…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("stub exited")
}
