package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xxnonanonxx/froggyforest/internal/core"
	"github.com/xxnonanonxx/froggyforest/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is a Bubble Tea model listing the best finished runs.
type ScoreboardModel struct {
	title    string
	runs     []storage.RunRecord
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
}

// NewScoreboardModel creates a scoreboard over runs, best first.
func NewScoreboardModel(title string, runs []storage.RunRecord, height int) ScoreboardModel {
	// Leave room for title, help and borders; header plus one line per run is enough.
	h := core.Min(core.Max(height-6, 3), len(runs)+1)

	t := table.New(
		table.WithColumns(scoreColumns()),
		table.WithRows(scoreRows(runs)),
		table.WithFocused(true),
		table.WithHeight(h),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return ScoreboardModel{
		title: title,
		runs:  runs,
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}
}

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Player", Width: 14},
		{Title: "Turns", Width: 7},
		{Title: "Ended", Width: 11},
		{Title: "Date", Width: 16},
	}
}

func scoreRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			player,
			fmt.Sprintf("%d", r.Turns),
			string(r.EndReason),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("HIGH SCORES - " + m.title))
	b.WriteString("\n")

	if len(m.runs) == 0 {
		b.WriteString("No runs recorded yet.\n")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(title string, runs []storage.RunRecord, height int) error {
	p := tea.NewProgram(NewScoreboardModel(title, runs, height))
	_, err := p.Run()
	return err
}

// FormatScores renders runs as a plain text table, for non-interactive output.
func FormatScores(title string, runs []storage.RunRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "High Scores - %s\n\n", title)
	if len(runs) == 0 {
		b.WriteString("No runs recorded yet.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-4s  %-6s  %-14s  %-6s  %-10s  %s\n", "Rank", "Score", "Player", "Turns", "Ended", "Date")
	fmt.Fprintf(&b, "  %-4s  %-6s  %-14s  %-6s  %-10s  %s\n", "----", "-----", "------", "-----", "-----", "----")
	for i, row := range scoreRows(runs) {
		fmt.Fprintf(&b, "  %-4d  %-6s  %-14s  %-6s  %-10s  %s\n", i+1, row[1], row[2], row[3], row[4], row[5])
	}
	return b.String()
}

// FormatRun renders the details of one run.
func FormatRun(r storage.RunRecord) string {
	player := r.Player
	if player == "" {
		player = "-"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Run:      %s\n", r.RunID)
	fmt.Fprintf(&b, "Player:   %s\n", player)
	fmt.Fprintf(&b, "Score:    %d\n", r.Score)
	fmt.Fprintf(&b, "Turns:    %d\n", r.Turns)
	fmt.Fprintf(&b, "Ended:    %s\n", r.EndReason)
	fmt.Fprintf(&b, "Duration: %s\n", r.Duration.Round(time.Second))
	fmt.Fprintf(&b, "Date:     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return b.String()
}
