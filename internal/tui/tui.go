// Package tui provides a Bubble Tea progress view for bulk cover
// downloads.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/457992195/BGmi/internal/console"
	"github.com/457992195/BGmi/internal/download"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))
)

// maxLogLines bounds the scrollback kept on screen.
const maxLogLines = 8

// Model is the Bubble Tea model for a cover download run.
type Model struct {
	spinner  spinner.Model
	progress progress.Model

	manager *download.Manager
	urls    []string
	events  <-chan download.ProgressEvent
	start   func() error

	logs []string
	done bool
	err  error

	width int
}

// Message types
type (
	eventMsg download.ProgressEvent

	doneMsg struct{ err error }
)

// NewModel creates a TUI model that runs the given cover download
// when the program starts. events must carry the manager's progress
// stream; the model closes it once the run finishes.
func NewModel(ctx context.Context, manager *download.Manager, urls []string, events chan download.ProgressEvent) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = console.Width() - 10
	if prog.Width > 60 {
		prog.Width = 60
	}

	return Model{
		spinner:  sp,
		progress: prog,
		manager:  manager,
		urls:     urls,
		events:   events,
		start: func() error {
			defer close(events)
			return manager.DownloadCovers(ctx, urls)
		},
	}
}

// Init starts the download and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen(), m.run())
}

func (m Model) run() tea.Cmd {
	return func() tea.Msg {
		return doneMsg{err: m.start()}
	}
}

func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return nil
		}
		return eventMsg(event)
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 10
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case eventMsg:
		line := msg.Message
		if msg.Level == download.LevelWarning || msg.Level == download.LevelError {
			line = warningStyle.Render(line)
		} else {
			line = dimStyle.Render(line)
		}
		m.logs = append(m.logs, line)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, m.listen()

	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the download progress.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Downloading covers"))
	b.WriteString("\n")

	downloaded, total := m.manager.GetProgress()
	ratio := 0.0
	if total > 0 {
		ratio = float64(downloaded) / float64(total)
	}

	if m.done {
		if m.err != nil {
			b.WriteString(warningStyle.Render(fmt.Sprintf("Finished with error: %v", m.err)))
		} else {
			b.WriteString(doneStyle.Render(fmt.Sprintf("Done. %d/%d covers saved", downloaded, total)))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("%s fetching %d covers\n", m.spinner.View(), len(m.urls)))
		b.WriteString(m.progress.ViewAs(ratio))
		b.WriteString("\n")
	}

	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(m.logs, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

// Run drives a cover download under the TUI and blocks until it
// finishes or the user quits.
func Run(ctx context.Context, manager *download.Manager, urls []string, events chan download.ProgressEvent) error {
	model := NewModel(ctx, manager, urls, events)
	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
