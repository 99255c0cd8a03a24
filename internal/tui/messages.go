package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/hireloop/funnel/internal/drag"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/models"
)

// snapshotMsg delivers a freshly loaded record snapshot.
type snapshotMsg struct {
	records []*models.ApplicationRecord
	names   map[string]string
}

// snapshotErrMsg reports a failed snapshot reload.
type snapshotErrMsg struct {
	err error
}

// transitionResultMsg reports the outcome of an async persistence call for
// an optimistic status transition.
type transitionResultMsg struct {
	transition drag.Transition
	err        error
}

// streamEventMsg wraps one event from the record stream subscription.
type streamEventMsg struct {
	event events.Event
	ok    bool
}

// loadSnapshotCmd reloads the full record snapshot and display-name cache.
// The stream has no partial-diff contract, so every change means a full
// reload.
func (m *Model) loadSnapshotCmd() tea.Cmd {
	apps := m.Deps.Apps
	candidates := m.Deps.Candidates
	ctx := m.Ctx
	return func() tea.Msg {
		loadCtx, cancel := context.WithTimeout(ctx, timeoutDB)
		defer cancel()

		records, err := apps.List(loadCtx)
		if err != nil {
			return snapshotErrMsg{err: err}
		}
		names, err := candidates.DisplayNames(loadCtx)
		if err != nil {
			return snapshotErrMsg{err: err}
		}
		return snapshotMsg{records: records, names: names}
	}
}

// persistTransitionCmd writes an optimistically applied transition to the
// store. The UI stays responsive while the call is in flight; the result
// message triggers either confirmation (nothing to do) or revert.
func (m *Model) persistTransitionCmd(t drag.Transition, note string) tea.Cmd {
	controller := m.Controller
	ctx := m.Ctx
	return func() tea.Msg {
		persistCtx, cancel := context.WithTimeout(ctx, timeoutDB)
		defer cancel()

		err := controller.Persist(persistCtx, t, note)
		if err != nil {
			slog.Error("failed to persist transition",
				"record", t.RecordID, "from", t.From, "to", t.To, "error", err)
		}
		return transitionResultMsg{transition: t, err: err}
	}
}

// waitForEventCmd blocks on the record stream until the next event.
func (m *Model) waitForEventCmd() tea.Cmd {
	ch := m.eventCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-ch
		return streamEventMsg{event: event, ok: ok}
	}
}
