// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typemaster/internal/engine"
	"github.com/verte-zerg/typemaster/internal/logger"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/stats"
)

const (
	plotHeight   = 6
	missedShown  = 5
	minTextLines = 3
)

// snapshotMsg signals that the engine published a change.
type snapshotMsg struct{}

// engineClosedMsg signals that the engine stopped publishing.
type engineClosedMsg struct{}

// Model implements the Bubble Tea typing UI. It renders engine snapshots and
// forwards keys to the engine; it holds no session state of its own.
type Model struct {
	eng *engine.Engine
	log *logger.Logger

	snap        model.Snapshot
	updates     <-chan model.Snapshot
	unsubscribe func()

	input textinput.Model
	keys  keyMap
	help  help.Model

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	correctedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E8A87C"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Copy().Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	statStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	ratingStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	cardStyle        = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// NewModel constructs a typing TUI model bound to eng.
func NewModel(eng *engine.Engine, log *logger.Logger) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.Focus()

	updates, unsubscribe := eng.Subscribe()
	m := &Model{
		eng:         eng,
		log:         log,
		updates:     updates,
		unsubscribe: unsubscribe,
		input:       input,
		keys:        newKeyMap(),
		help:        help.New(),
	}
	m.apply(eng.Snapshot())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

// Result returns the last snapshot the model rendered.
func (m *Model) Result() model.Snapshot {
	return m.snap
}

// Close stops listening for engine updates.
func (m *Model) Close() {
	m.unsubscribe()
}

func waitForSnapshot(updates <-chan model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return engineClosedMsg{}
		}
		return snapshotMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case snapshotMsg:
		// Read the engine directly; the channel value may be older than a
		// command result already applied.
		m.apply(m.eng.Snapshot())
		return m, waitForSnapshot(m.updates)
	case engineClosedMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset), key.Matches(msg, m.keys.Restart):
			m.log.Debug("reset requested", logger.F("key", msg.String()), logger.F("status", m.snap.Status))
			m.apply(m.eng.Reset())
			return m, nil
		case msg.Type == tea.KeyEnter, key.Matches(msg, m.keys.Tab):
			return m, nil
		case key.Matches(msg, m.keys.Time):
			m.apply(m.eng.SetTimeLimit(nextTimeLimit(m.snap.TimeLimit)))
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			m.apply(m.eng.SetMode(nextMode(m.snap.Mode)))
			return m, nil
		}
		if m.snap.Status == model.StatusFinished {
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.apply(m.eng.Submit(value))
	}
	return m, cmd
}

// apply renders snap from now on. A new session clears the input surface.
func (m *Model) apply(snap model.Snapshot) {
	if snap.ID != m.snap.ID {
		m.input.Reset()
	}
	m.snap = snap
	m.keys.setRunning(snap.Status == model.StatusRunning)
}

// View implements tea.Model.
func (m *Model) View() string {
	targetRunes := []rune(m.snap.Text)
	if len(targetRunes) == 0 {
		return ""
	}
	inputRunes := []rune(m.snap.UserInput)
	cursorIndex := -1
	if m.snap.Status != model.StatusFinished && len(inputRunes) < len(targetRunes) {
		cursorIndex = len(inputRunes)
	}
	styledRunes := buildStyledRunes(targetRunes, inputRunes, auditedSet(m.snap.ErrorPositions), cursorIndex)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}

	var content string
	if m.snap.Status == model.StatusFinished {
		content = m.renderResults(contentWidth)
	} else {
		lines := wrapLines(styledRunes, contentWidth)
		from, to := visibleWindow(lines, cursorIndex, m.textLines())
		content = lipgloss.NewStyle().Width(contentWidth).Render(renderLines(lines[from:to]))
	}
	content = lipgloss.JoinVertical(lipgloss.Center, m.renderHeader(), "", content)

	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// textLines is how many text lines fit beside the header and footer.
func (m *Model) textLines() int {
	n := m.height - 6
	if n < minTextLines {
		return minTextLines
	}
	return n
}

func (m *Model) renderHeader() string {
	s := m.snap.Stats
	segments := []string{
		timerStyle.Render(fmt.Sprintf("%ds", m.snap.TimeRemaining)),
		statStyle.Render(fmt.Sprintf("WPM %d", s.WPM)),
		statStyle.Render(fmt.Sprintf("ACC %d%%", s.Accuracy)),
		statStyle.Render(fmt.Sprintf("RAW %d", s.RawWPM)),
	}
	line := strings.Join(segments, "   ")
	if m.snap.Status == model.StatusIdle {
		line += "   " + footerStyle.Render("start typing to begin")
	}
	return line
}

func (m *Model) renderFooter() string {
	targetRunes := []rune(m.snap.Text)
	if len(targetRunes) == 0 {
		return ""
	}
	progress := int(float64(len([]rune(m.snap.UserInput))) / float64(len(targetRunes)) * 100)
	if progress > 100 {
		progress = 100
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("%s · %ds", m.snap.Mode.Label(), m.snap.TimeLimit),
	}
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if helpView := m.help.View(m.keys); helpView != "" {
		footer += "  " + helpView
	}
	return footer
}

func (m *Model) renderResults(width int) string {
	s := m.snap.Stats
	cards := []string{
		metricCard("WPM", fmt.Sprintf("%d", s.WPM)),
		metricCard("Accuracy", fmt.Sprintf("%d%%", s.Accuracy)),
		metricCard("Raw WPM", fmt.Sprintf("%d", s.RawWPM)),
		metricCard("Chars", fmt.Sprintf("%d/%d", s.CorrectChars, s.IncorrectChars)),
		metricCard("Time", fmt.Sprintf("%.0fs", s.TimeElapsed)),
	}
	var cardBlock string
	if width < 60 {
		cardBlock = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		cardBlock = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	parts := []string{ratingStyle.Render(stats.Rating(s.WPM)), cardBlock}
	if plot := renderSpeedPlot(m.snap.Samples, width); plot != "" {
		parts = append(parts, "", plot)
	}
	if missed := renderMissed(m.snap); missed != "" {
		parts = append(parts, "", missed)
	}
	parts = append(parts, "", footerStyle.Render("enter for new text · esc to reset"))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderSpeedPlot(samples []model.Stats, width int) string {
	if len(samples) < 2 {
		return ""
	}
	series := stats.SpeedSeries(samples)
	var buf bytes.Buffer
	if err := stats.PlotSeriesWithColor(&buf, "", series, stats.PlotWidthFor(width-6), plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render speed plot: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderMissed(snap model.Snapshot) string {
	misses := stats.MissedCharsForSnapshot(snap, missedShown)
	if len(misses) == 0 {
		return ""
	}
	parts := make([]string, 0, len(misses))
	for _, miss := range misses {
		parts = append(parts, fmt.Sprintf("%s×%d", miss.Char, miss.Count))
	}
	return cardTitleStyle.Render("Missed ") + incorrectStyle.Render(strings.Join(parts, " "))
}

func nextTimeLimit(current int) int {
	for i, limit := range model.TimeLimits {
		if limit == current {
			return model.TimeLimits[(i+1)%len(model.TimeLimits)]
		}
	}
	return model.TimeLimits[0]
}

func nextMode(current model.Mode) model.Mode {
	for i, mode := range model.Modes {
		if mode == current {
			return model.Modes[(i+1)%len(model.Modes)]
		}
	}
	return model.Modes[0]
}
