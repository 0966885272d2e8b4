// Package tui provides a Bubble Tea viewer for session transcripts, with an
// optional live-reload channel for following a conversation as it grows.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	markerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// reloadMsg signals that the underlying transcript changed.
type reloadMsg struct{}

// Model is the root Bubble Tea model for the transcript viewer.
type Model struct {
	filename string
	render   func() (string, error)
	updates  <-chan struct{}
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	follow   bool
	err      error
}

// New creates a viewer for the transcript named filename. render produces
// the current markdown content; updates, when non-nil, delivers a signal
// whenever the content should be re-rendered.
func New(filename string, render func() (string, error), updates <-chan struct{}) Model {
	return Model{
		filename: filepath.Base(filename),
		render:   render,
		updates:  updates,
		follow:   updates != nil,
	}
}

// Run starts the viewer and blocks until the user quits.
func Run(filename string, render func() (string, error), updates <-chan struct{}) error {
	p := tea.NewProgram(New(filename, render, updates), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return m.waitForUpdate() }

// waitForUpdate blocks on the updates channel and converts each signal into
// a reloadMsg. A nil or closed channel ends the cycle.
func (m Model) waitForUpdate() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.updates; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "f":
			m.follow = !m.follow
			if m.follow {
				m.viewport.GotoBottom()
			}
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			// title(1) + statusBar(1) = 2 fixed rows
			m.viewport = viewport.New(m.width, max(1, m.height-2))
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = max(1, m.height-2)
		}
		m.reload()
		return m, nil

	case reloadMsg:
		m.reload()
		return m, m.waitForUpdate()
	}
	return m, nil
}

func (m *Model) reload() {
	content, err := m.render()
	m.err = err
	if err == nil {
		m.viewport.SetContent(styleTranscript(content))
		if m.follow {
			m.viewport.GotoBottom()
		}
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  scribe  " + m.filename)

	content := m.viewport.View()
	if m.err != nil {
		content = markerStyle.Render(fmt.Sprintf("error: %v", m.err))
	}

	hint := "  ↑/↓ scroll  g/G top/bottom  f follow  q quit"
	if m.follow {
		hint += "  [following]"
	}
	pct := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	pad := m.width - lipgloss.Width(hint) - len(pct) - 2
	if pad < 1 {
		pad = 1
	}
	statusBar := statusBarStyle.Width(m.width).Render(
		hint + strings.Repeat(" ", pad) + pct,
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, content, statusBar)
}

// ── Transcript styling ─────────────────

// styleTranscript applies terminal styling per markdown line. The transcript
// embeds HTML spans for browser rendering; those are stripped here in favor
// of terminal colors.
func styleTranscript(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = styleLine(line)
	}
	return strings.Join(lines, "\n")
}

func styleLine(line string) string {
	plain := stripSpans(line)
	switch {
	case strings.HasPrefix(line, "# "):
		return headingStyle.Render(plain)
	case strings.HasPrefix(line, "**User"):
		return userStyle.Render(plain)
	case strings.HasPrefix(line, "**Assistant:**"):
		return assistantStyle.Render(plain)
	case strings.HasPrefix(line, "**Session ID**"),
		strings.HasPrefix(line, "**Started**"),
		strings.HasPrefix(line, "**Working Directory**"):
		return metaStyle.Render(plain)
	case strings.Contains(line, "**[Interrupted]**"),
		strings.Contains(line, "**[Session Ended:"):
		return markerStyle.Render(plain)
	case strings.HasPrefix(line, "<details>"),
		strings.HasPrefix(line, "</details>"),
		strings.HasPrefix(line, "<summary>"),
		strings.HasPrefix(line, "<br>"):
		return dimStyle.Render(plain)
	default:
		return plain
	}
}

// stripSpans removes the HTML span and br tags that only matter for
// markdown viewers.
func stripSpans(line string) string {
	for _, tag := range []string{"</span>", "<br>"} {
		line = strings.ReplaceAll(line, tag, "")
	}
	for {
		start := strings.Index(line, "<span")
		if start == -1 {
			return line
		}
		end := strings.Index(line[start:], ">")
		if end == -1 {
			return line
		}
		line = line[:start] + line[start+end+1:]
	}
}
