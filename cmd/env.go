package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hireloop/funnel/internal/database"
	"github.com/hireloop/funnel/internal/drag"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/registry"
	"github.com/hireloop/funnel/internal/settings"
	"github.com/hireloop/funnel/internal/user"
)

// Timeout for one CLI invocation end to end
const cliTimeout = 30 * time.Second

// env holds the wired storage and domain services for one CLI invocation.
type env struct {
	db *sql.DB

	Apps       database.ApplicationRepository
	Candidates database.CandidateRepository
	Settings   *settings.Store
	Registry   *registry.Registry
	Controller *drag.Controller
}

// openEnv initializes the store and builds the registry from the saved
// custom stages. The returned cleanup closes the database.
func openEnv(ctx context.Context) (*env, func(), error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	hub := events.NewHub()
	apps := database.NewApplicationRepository(db, hub)
	store := settings.NewStore(database.NewSettingsRepository(db), hub, user.CurrentRecruiterID())

	reg := registry.New(store.Load(ctx).CustomStages, store, apps)

	e := &env{
		db:         db,
		Apps:       apps,
		Candidates: database.NewCandidateRepository(db),
		Settings:   store,
		Registry:   reg,
		Controller: drag.NewController(reg, apps),
	}

	cleanup := func() {
		hub.Close()
		_ = db.Close()
	}
	return e, cleanup, nil
}
