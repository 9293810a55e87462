// Package tui renders a running conversion job in the terminal.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/formfill-go/pkg/formfill"
)

// ErrAborted is returned by Run when the view is closed before the job ends.
var ErrAborted = errors.New("aborted before the job finished")

// maxLines is the number of progress lines kept on screen.
const maxLines = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)
	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Source is a running job: progress lines followed by one outcome.
type Source interface {
	Lines() <-chan string
	Done() <-chan formfill.Outcome
}

type lineMsg string

type doneMsg formfill.Outcome

// Model is the bubbletea model of the job view.
type Model struct {
	title   string
	source  Source
	spinner spinner.Model
	lines   []string
	dropped int
	outcome *formfill.Outcome
	aborted bool
	width   int
}

// New creates a job view reading from source.
func New(title string, source Source) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	return Model{title: title, source: source, spinner: sp}
}

// Init starts the spinner and the first channel read.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

// waitForEvent reads the next line, or the outcome once lines are exhausted.
func (m Model) waitForEvent() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		if line, ok := <-source.Lines(); ok {
			return lineMsg(line)
		}
		return doneMsg(<-source.Done())
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.outcome == nil {
				m.aborted = true
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case lineMsg:
		m.lines = append(m.lines, string(msg))
		if over := len(m.lines) - maxLines; over > 0 {
			m.lines = m.lines[over:]
			m.dropped += over
		}
		return m, m.waitForEvent()
	case doneMsg:
		outcome := formfill.Outcome(msg)
		m.outcome = &outcome
		return m, tea.Quit
	case spinner.TickMsg:
		if m.outcome != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the title, recent progress lines and the job status.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if len(m.lines) > 0 {
		body := m.lines
		if m.dropped > 0 {
			body = append([]string{fmt.Sprintf("… %d earlier lines", m.dropped)}, body...)
		}
		box := boxStyle
		if m.width > 4 {
			box = box.Width(m.width - 2)
		}
		b.WriteString(box.Render(logStyle.Render(strings.Join(body, "\n"))))
		b.WriteString("\n")
	}

	switch {
	case m.outcome != nil && m.outcome.Err != nil:
		b.WriteString(failureStyle.Render("✗ " + m.outcome.Message))
	case m.outcome != nil:
		b.WriteString(successStyle.Render("✓ " + m.outcome.Message))
	case m.aborted:
		b.WriteString(failureStyle.Render("aborted"))
	default:
		b.WriteString(m.spinner.View() + " working " + hintStyle.Render("(q to quit)"))
	}
	b.WriteString("\n")
	return b.String()
}

// Outcome returns the job outcome, or nil while the job is running.
func (m Model) Outcome() *formfill.Outcome {
	return m.outcome
}

// Run shows the job view on out until the job finishes and returns its outcome.
func Run(title string, source Source, in io.Reader, out io.Writer) (formfill.Outcome, error) {
	p := tea.NewProgram(New(title, source), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return formfill.Outcome{}, fmt.Errorf("run job view: %w", err)
	}
	m, ok := final.(Model)
	if !ok || m.outcome == nil {
		return formfill.Outcome{}, ErrAborted
	}
	return *m.outcome, nil
}
