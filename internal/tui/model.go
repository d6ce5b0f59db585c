package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nataschneider2001/life-Os/internal/domain"
	"github.com/nataschneider2001/life-Os/internal/engine"
	"github.com/nataschneider2001/life-Os/internal/insight"
	"github.com/nataschneider2001/life-Os/internal/store"
	"github.com/nataschneider2001/life-Os/internal/ui"
)

type dashboardModel struct {
	ctx     context.Context
	store   *store.Store
	session *insight.Session

	width  int
	height int

	state    domain.AppState
	selected int

	insightText string
	thinking    bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state domain.AppState
	err   error
}

type appliedMsg struct {
	state   domain.AppState
	outcome engine.Outcome
}

type insightMsg struct {
	res insight.Result
}

func newDashboardModel(ctx context.Context, st *store.Store, session *insight.Session) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		store:   st,
		session: session,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.store.Load(m.ctx)
		return loadedMsg{state: state, err: err}
	}
}

func (m dashboardModel) applyCmd(intent engine.Intent) tea.Cmd {
	return func() tea.Msg {
		next, out := engine.Apply(m.state, intent)
		if out.Changed {
			m.store.Save(m.ctx, next)
		}
		return appliedMsg{state: next, outcome: out}
	}
}

func (m dashboardModel) waitInsightCmd() tea.Cmd {
	return func() tea.Msg {
		return insightMsg{res: <-m.session.Results()}
	}
}

// row is one selectable line: a task or a habit.
type row struct {
	id      string
	isHabit bool
	label   string
	done    bool
}

func (m dashboardModel) rows() []row {
	var out []row
	today := domain.DayKey(time.Now())
	for _, t := range m.state.Tasks {
		out = append(out, row{id: t.ID, label: t.Title, done: t.Completed})
	}
	for _, h := range m.state.Habits {
		label := fmt.Sprintf("%s (%d %s)", h.Name, h.Streak, ui.IconFire)
		out = append(out, row{id: h.ID, isHabit: true, label: label, done: h.DoneOn(today)})
	}
	return out
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case appliedMsg:
		m.state = msg.state
		out := msg.outcome
		switch {
		case !out.Changed:
			m.lastLog = "Nothing to do."
		case out.LevelUp:
			m.lastLog = fmt.Sprintf("+%d XP — %s (level %d → %d)", out.PointsAwarded, ui.BadgeLevelUp, out.LevelBefore, out.LevelAfter)
		case out.PointsAwarded > 0:
			m.lastLog = fmt.Sprintf("+%d XP", out.PointsAwarded)
		default:
			m.lastLog = "Updated."
		}
		return m, nil

	case insightMsg:
		m.thinking = false
		m.insightText = msg.res.Text
		m.lastLog = fmt.Sprintf("Coach (%s) replied.", msg.res.Kind)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if rows := m.rows(); m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			r := rows[m.selected]
			if r.isHabit {
				return m, m.applyCmd(engine.ToggleHabitToday{ID: r.id, Now: time.Now()})
			}
			return m, m.applyCmd(engine.ToggleTask{ID: r.id})
		case "g":
			if m.session == nil {
				m.lastLog = "Coach unavailable: no API key configured."
				return m, nil
			}
			m.thinking = true
			m.insightText = ""
			m.lastLog = "Asking the coach…"
			m.session.Request(m.ctx, insight.AnalysisGeneral, m.state)
			return m, m.waitInsightCmd()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	if m.loading {
		return "LifeOS — loading…"
	}
	stats := m.state.Stats
	bar := progressBar(stats.Points, stats.XPToNextLevel, 30)
	return fmt.Sprintf("LifeOS | Level %d | %d/%d XP %s", stats.Level, stats.Points, stats.XPToNextLevel, bar)
}

func (m dashboardModel) renderSidebar() string {
	s := m.state
	lines := []string{"Today"}
	lines = append(lines, fmt.Sprintf("- Tasks done: %d/%d", s.CompletedTasks(), len(s.Tasks)))
	lines = append(lines, fmt.Sprintf("- Consistency: %.0f%%", s.HabitConsistency()))
	lines = append(lines, fmt.Sprintf("- Daily goal: %d XP", s.Settings.DailyGoalXP))
	lines = append(lines, "")
	lines = append(lines, "Finance")
	lines = append(lines, fmt.Sprintf("- Balance: %s %.2f", s.Settings.Currency, s.Balance()))
	lines = append(lines, fmt.Sprintf("- In:  %.2f", s.TotalIncome()))
	lines = append(lines, fmt.Sprintf("- Out: %.2f", s.TotalExpense()))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- g: ask the coach")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}

	var out []string
	out = append(out, "Tasks & Habits")
	rows := m.rows()
	if len(rows) == 0 {
		out = append(out, "(nothing yet — add tasks and habits from the CLI)")
	}
	for i, r := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if r.done {
			mark = "[x]"
		}
		kind := ui.IconTask
		if r.isHabit {
			kind = ui.IconHabit
		}
		out = append(out, fmt.Sprintf("%s%s %s %s", cursor, mark, kind, r.label))
	}

	out = append(out, "")
	out = append(out, "Coach")
	switch {
	case m.thinking:
		out = append(out, "Thinking…")
	case m.insightText != "":
		out = append(out, wrapText(m.insightText, 60)...)
	default:
		out = append(out, "(press g for an insight)")
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	words := strings.Fields(s)
	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
