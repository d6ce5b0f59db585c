package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nataschneider2001/life-Os/internal/insight"
	"github.com/nataschneider2001/life-Os/internal/store"
)

// RunDashboard opens the interactive dashboard. The session may be nil when
// no insight provider is configured.
func RunDashboard(ctx context.Context, st *store.Store, session *insight.Session, out io.Writer) error {
	m := newDashboardModel(ctx, st, session)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
