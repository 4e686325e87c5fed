package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ippctl/ippctl/internal/ipp"
	"github.com/ippctl/ippctl/internal/monitor"
)

// Color palette for command output
var (
	successColor = lipgloss.Color("#43BF6D")
	errorColor   = lipgloss.Color("#FF5555")
	mutedColor   = lipgloss.Color("#626262")
	accentColor  = lipgloss.Color("#7D56F4")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle  = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
)

// renderStatus formats one reachability snapshot for plain (non-watch) output.
func renderStatus(endpoint ipp.Endpoint, status monitor.Status) string {
	if status.Reachable {
		return fmt.Sprintf("%s %s",
			successStyle.Render("✓ reachable"),
			mutedStyle.Render(fmt.Sprintf("%s (%s)", endpoint.PrinterURI(), status.Latency.Round(time.Millisecond))))
	}
	return fmt.Sprintf("%s %s\n  %s",
		errorStyle.Render("✗ unreachable"),
		mutedStyle.Render(endpoint.PrinterURI()),
		mutedStyle.Render(status.Err))
}

// watchTickMsg drives periodic reads of the poller's cached status.
type watchTickMsg time.Time

// watchModel is the live status view behind 'ippctl watch'. The poller does
// the actual probing on its own schedule; the model only renders whatever
// snapshot is cached when a tick fires.
type watchModel struct {
	endpoint ipp.Endpoint
	poller   *monitor.Poller
	interval int

	spin   spinner.Model
	status monitor.Status
	seen   bool
}

func newWatchModel(endpoint ipp.Endpoint, poller *monitor.Poller, interval int) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	return watchModel{
		endpoint: endpoint,
		poller:   poller,
		interval: interval,
		spin:     s,
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case watchTickMsg:
		m.status, m.seen = m.poller.Last()
		return m, watchTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	header := headerStyle.Render("Watching " + m.endpoint.PrinterURI())
	footer := mutedStyle.Render(fmt.Sprintf("polling every %ds • press q to quit", m.interval))

	if !m.seen {
		return fmt.Sprintf("\n%s\n\n  %s probing...\n\n%s\n", header, m.spin.View(), footer)
	}

	var line string
	if m.status.Reachable {
		line = fmt.Sprintf("%s  latency %s",
			successStyle.Render("✓ reachable"),
			m.status.Latency.Round(time.Millisecond))
	} else {
		line = fmt.Sprintf("%s  %s",
			errorStyle.Render("✗ unreachable"),
			mutedStyle.Render(m.status.Err))
	}

	checked := mutedStyle.Render("last checked " + m.status.CheckedAt.Format("15:04:05"))

	return fmt.Sprintf("\n%s\n\n  %s\n  %s\n\n%s\n", header, line, checked, footer)
}
