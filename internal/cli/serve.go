package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fundledger/backend/internal/config"
	"github.com/fundledger/backend/internal/events"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var listenAddress string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := load()
		if err != nil {
			return err
		}

		return serve(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddress, "listen", ":8080", "Address the API server listens on.")
}

func serve(cfg config.Config) error {
	err := connect(cfg)
	if err != nil {
		return err
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(cfg, publisher, r.Group(cfg.URL().Path))

	srv := &http.Server{
		Addr:              listenAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	// Graceful shutdown handling
	done := make(chan struct{})
	go func() {
		defer close(done)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("address", listenAddress).Str("currency", cfg.Currency).Msg("Starting fundledger")
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	log.Info().Msg("Server stopped gracefully")
	return nil
}

// connect creates the data directory and opens the database.
func connect(cfg config.Config) error {
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return err
	}

	return models.Connect(cfg.DBPath)
}

// newPublisher returns the AMQP publisher if an event bus is configured.
func newPublisher(cfg config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		log.Info().Msg("AMQP_URL not set, events are discarded")
		return events.Noop{}, nil
	}

	return events.Dial(cfg.AMQPURL, cfg.AMQPExchange)
}
