package tui

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/tui/components"
	"github.com/hireloop/funnel/internal/tui/state"
)

// resumeLoadedMsg delivers the rendered resume preview content.
type resumeLoadedMsg struct {
	content string
	err     error
}

// detailLoadedMsg delivers the full application detail with history.
type detailLoadedMsg struct {
	detail *models.ApplicationDetail
	err    error
}

// openResumeView switches to the resume preview for the selected card.
func (m Model) openResumeView() (tea.Model, tea.Cmd) {
	rec := m.currentRecord()
	if rec == nil {
		return m, nil
	}
	if rec.ResumeRef == "" {
		m.NotificationState.Add(state.LevelInfo, "No resume on file")
		return m, nil
	}

	m.resumeReady = false
	m.UiState.SetMode(state.ResumeViewMode)
	return m, m.loadResumeCmd(rec.ResumeRef)
}

// loadResumeCmd reads and renders the stored markdown resume.
func (m *Model) loadResumeCmd(resumeRef string) tea.Cmd {
	width := m.UiState.Width() - 4
	if width < 20 {
		width = 20
	}
	return func() tea.Msg {
		raw, err := os.ReadFile(resumeRef)
		if err != nil {
			return resumeLoadedMsg{err: fmt.Errorf("failed to read resume %q: %w", resumeRef, err)}
		}
		return resumeLoadedMsg{content: components.RenderMarkdown(string(raw), width)}
	}
}

// handleResumeLoaded sets up the scrollable preview once the content is
// rendered.
func (m Model) handleResumeLoaded(msg resumeLoadedMsg) (tea.Model, tea.Cmd) {
	if m.UiState.Mode() != state.ResumeViewMode {
		return m, nil
	}
	if msg.err != nil {
		m.UiState.SetMode(state.NormalMode)
		m.NotificationState.Add(state.LevelError, "Could not open resume")
		return m, nil
	}

	vp := viewport.New()
	vp.SetWidth(m.UiState.Width())
	vp.SetHeight(max(m.UiState.Height()-2, 1))
	vp.SetContent(msg.content)
	m.resumeViewport = vp
	m.resumeReady = true
	return m, nil
}

// handleResumeMode handles input while the resume preview is open. Scroll
// keys are forwarded to the viewport.
func (m Model) handleResumeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Deps.Config.KeyMappings
	switch msg.String() {
	case "esc", km.Quit, km.ViewResume:
		m.resumeReady = false
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if !m.resumeReady {
		return m, nil
	}
	vp, cmd := m.resumeViewport.Update(msg)
	m.resumeViewport = vp
	return m, cmd
}

// openDetailView switches to the application detail view for the selected
// card.
func (m Model) openDetailView() (tea.Model, tea.Cmd) {
	rec := m.currentRecord()
	if rec == nil {
		return m, nil
	}

	m.detail = nil
	m.UiState.SetMode(state.DetailViewMode)
	return m, m.loadDetailCmd(rec.ID)
}

// loadDetailCmd fetches the full record with its status history.
func (m *Model) loadDetailCmd(recordID string) tea.Cmd {
	apps := m.Deps.Apps
	ctx := m.Ctx
	return func() tea.Msg {
		loadCtx, cancel := context.WithTimeout(ctx, timeoutDB)
		defer cancel()

		detail, err := apps.Get(loadCtx, recordID)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

// handleDetailLoaded stores the loaded detail for rendering.
func (m Model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if m.UiState.Mode() != state.DetailViewMode {
		return m, nil
	}
	if msg.err != nil {
		m.UiState.SetMode(state.NormalMode)
		m.NotificationState.Add(state.LevelError, "Could not load candidate details")
		return m, nil
	}
	m.detail = msg.detail
	return m, nil
}

// handleDetailMode handles input while the detail view is open.
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Deps.Config.KeyMappings
	switch msg.String() {
	case "esc", km.Quit, km.ViewDetails:
		m.detail = nil
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
