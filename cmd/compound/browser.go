package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aristath/compound/internal/feedback"
	"github.com/aristath/compound/internal/modules/dashboard"
	"github.com/aristath/compound/internal/network"
	"github.com/aristath/compound/internal/server"
	"github.com/aristath/compound/internal/ui"
)

// runBrowser starts the TUI. With --mock the fixture API runs alongside it
// on a loopback port and stops when the TUI exits.
func runBrowser(cmd *cobra.Command, args []string) error {
	mock, _ := cmd.Flags().GetBool("mock")
	sortName, _ := cmd.Flags().GetString("sort")
	sortOption, err := dashboard.ParseSortOption(sortName)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs go to a file or nowhere.
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	env := environment(cfg)
	if mock {
		_, portSet := os.LookupEnv("COMPOUND_FIXTURE_PORT")
		listener, err := net.Listen("tcp", mockAddr(cfg.Fixture.Port, portSet))
		if err != nil {
			return fmt.Errorf("failed to bind fixture server: %w", err)
		}
		env = network.Development("http://" + listener.Addr().String())

		srv := server.New(server.Config{
			Log:         log,
			FailFirst:   cfg.Fixture.FailFirst,
			CORSOrigins: cfg.Fixture.CORSOrigins,
		})
		g.Go(func() error {
			if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	log.Info().
		Str("environment", env.Name).
		Str("api_url", env.BaseURL).
		Bool("mock", mock).
		Msg("Starting browser")

	repo := newRepository(cfg, env, log)
	fb := feedback.Multi{feedback.NewBell(os.Stderr), feedback.NewLogging(log)}

	model := ui.NewModel(gctx, repo, fb, log)
	model.SetSortOption(sortOption)

	g.Go(func() error {
		defer cancel()
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})

	return g.Wait()
}

// mockAddr is the loopback address for --mock. Without an explicit port the
// system picks a free one, so a running serve command does not collide.
func mockAddr(port int, explicit bool) string {
	if !explicit {
		port = 0
	}
	return fmt.Sprintf("127.0.0.1:%d", port)
}
