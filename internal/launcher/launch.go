// Package launcher wires the storage, settings, and event plumbing together
// and runs the interactive board.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/hireloop/funnel/internal/config"
	"github.com/hireloop/funnel/internal/database"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/logging"
	"github.com/hireloop/funnel/internal/settings"
	"github.com/hireloop/funnel/internal/tui"
	"github.com/hireloop/funnel/internal/tui/components"
	"github.com/hireloop/funnel/internal/tui/theme"
	"github.com/hireloop/funnel/internal/user"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	initCtx := context.Background()
	db, err := database.InitDB(initCtx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		// Allow in-flight operations to wrap up before closing
		time.Sleep(100 * time.Millisecond)
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	hub := events.NewHub()
	defer hub.Close()

	deps := tui.Deps{
		Config:     cfg,
		Apps:       database.NewApplicationRepository(db, hub),
		Candidates: database.NewCandidateRepository(db),
		Settings:   settings.NewStore(database.NewSettingsRepository(db), hub, user.CurrentRecruiterID()),
		Hub:        hub,
	}

	model := tui.InitialModel(ctx, deps)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Give the program a moment to finish database queries still running
		time.Sleep(2 * time.Second)
	}

	return nil
}
