package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aristath/compound/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fixture API server",
	Long:  "Serve the built-in advisors, accounts and holdings fixtures over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); cmd.Flags().Changed("port") {
			cfg.Fixture.Port = port
		}
		if n, _ := cmd.Flags().GetInt("fail-first"); cmd.Flags().Changed("fail-first") {
			cfg.Fixture.FailFirst = n
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, closeLog, err := newLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		srv := server.New(server.Config{
			Log:         log,
			Port:        cfg.Fixture.Port,
			FailFirst:   cfg.Fixture.FailFirst,
			CORSOrigins: cfg.Fixture.CORSOrigins,
		})

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		// Wait for interrupt signal
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
		case err, ok := <-errCh:
			if ok {
				return err
			}
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}

		log.Info().Msg("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides COMPOUND_FIXTURE_PORT)")
	serveCmd.Flags().Int("fail-first", 0, "answer the first N requests per route with HTTP 500")
}
