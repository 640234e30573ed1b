package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxScores          = 100
)

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Clear    key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear mode")),
		Confirm:  key.NewBinding(key.WithKeys("y")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best games of each mode with a stats line.
type ScoreboardModel struct {
	modes      []registry.GameInfo
	best       map[string]int // Best score per mode for the sidebar
	modeCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      storage.Stats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	confirmClear  bool // Waiting for "y" after "x"
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened at mode. An unknown or
// empty mode opens the first one.
func NewScoreboardModel(store *storage.Store, mode string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		best:   make(map[string]int),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, info := range m.modes {
		if info.ID == mode {
			m.modeCursor = i
		}
	}

	m.table = m.createTable()
	m.loadBest()
	m.loadScores()
	return m
}

// Mode returns the ID of the mode on display, or "" when none is registered.
func (m ScoreboardModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.modeCursor].ID
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 6},
		{Title: "Lvl", Width: 4},
		{Title: "Date", Width: 13},
	}

	avail := m.width - 4
	if m.showSidebar() {
		avail -= sidebarWidth + 4
	}
	if avail > 56 {
		columns[1].Width = 12
		columns[4].Width = min(avail-44, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) loadBest() {
	if m.store == nil {
		return
	}
	for _, info := range m.modes {
		if best, err := m.store.HighScore(info.ID); err == nil {
			m.best[info.ID] = best
		}
	}
}

// loadScores refreshes the table and stats for the current mode.
func (m *ScoreboardModel) loadScores() {
	mode := m.Mode()
	m.scores = nil
	m.stats = storage.Stats{Mode: mode}

	if m.store != nil && mode != "" {
		if scores, err := m.store.TopScores(mode, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(mode); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Level),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (m.modeCursor + delta + len(m.modes)) % len(m.modes)
	m.loadScores()
}

// clearMode deletes every score of the current mode.
func (m *ScoreboardModel) clearMode() {
	mode := m.Mode()
	if m.store == nil || mode == "" {
		return
	}
	if err := m.store.ClearScores(mode); err != nil {
		return
	}
	m.best[mode] = 0
	m.loadScores()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmClear {
			m.confirmClear = false
			if key.Matches(msg, m.keys.Confirm) {
				m.clearMode()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.confirmClear = len(m.scores) > 0
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadScores()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.modeCursor].Title
	}

	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.renderTableContent())
	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	b.WriteString("\n")
	if m.confirmClear {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Delete all %s scores? y to confirm, any key to cancel", m.Mode())))
	} else {
		b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// statsLine summarizes every game played in the current mode.
func (m ScoreboardModel) statsLine() string {
	if m.stats.GamesCount == 0 {
		return "No games played"
	}
	line := fmt.Sprintf("Games: %d  Avg: %.0f  Lines: %d  Max level: %d",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.TotalLines, m.stats.MaxLevel)
	if !m.stats.LastPlayed.IsZero() {
		line += "  Last: " + m.stats.LastPlayed.Local().Format("Jan 02")
	}
	return line
}

// renderSidebar lists the modes with their best score.
func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Modes\n")
	sb.WriteString(strings.Repeat("─", sidebarWidth-4))

	for i, info := range m.modes {
		cursor, style := "  ", lipgloss.NewStyle()
		if i == m.modeCursor {
			cursor, style = "> ", scoreTitleStyle
		}
		name := truncate(info.Title, sidebarWidth-6)
		sb.WriteString("\n" + style.Render(cursor+name))
		if best := m.best[info.ID]; best > 0 {
			sb.WriteString("\n" + dimStyle.Render(fmt.Sprintf("    best %d", best)))
		}
	}

	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

// renderTabs lays the modes out in a row for narrow terminals.
func (m ScoreboardModel) renderTabs() string {
	if len(m.modes) == 0 {
		return ""
	}

	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, info := range m.modes {
		name := truncate(info.Title, 14)
		if i == m.modeCursor {
			tabs[i] = active.Render(name)
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title)
	}
	return line
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nClear some lines to set one!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen opened at mode.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, mode string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, mode, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
