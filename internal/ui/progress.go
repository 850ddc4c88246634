// Package ui renders the interactive progress view shown while analyzing
// multi-file projects on a TTY. The driver reports through a channel sink;
// the Bubble Tea program consumes the events and quits when the run ends.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// EventKind tags a progress event.
type EventKind uint8

const (
	// EventStart announces the total number of units.
	EventStart EventKind = iota
	// EventFile marks one unit as parsed.
	EventFile
	// EventDone ends the run.
	EventDone
)

// Event is one progress notification from the driver.
type Event struct {
	Kind  EventKind
	Total int
	Label string
}

// ChannelSink forwards driver progress callbacks into an event channel. It
// satisfies the driver's Progress interface.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Start(total int)      { s.Ch <- Event{Kind: EventStart, Total: total} }
func (s ChannelSink) Advance(label string) { s.Ch <- Event{Kind: EventFile, Label: label} }
func (s ChannelSink) Done()                { s.Ch <- Event{Kind: EventDone} }

type eventMsg Event
type closedMsg struct{}

type analyzeModel struct {
	title   string
	events  <-chan Event
	spinner spinner.Model
	bar     progress.Model
	total   int
	parsed  int
	current string
	width   int
	done    bool
}

// NewAnalyzeModel returns the Bubble Tea model driving the analyze view.
func NewAnalyzeModel(title string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 60

	return &analyzeModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		width:   80,
	}
}

func (m *analyzeModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *analyzeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.apply(Event(msg))
		return m, tea.Batch(cmd, m.listen())
	case closedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		barModel, cmd := m.bar.Update(msg)
		m.bar = barModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *analyzeModel) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.total > 0 {
		header = fmt.Sprintf("%s (%d/%d)", header, m.parsed, m.total)
	}
	if m.done {
		header = "done: " + header
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	if m.current != "" && !m.done {
		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		b.WriteString(nameStyle.Render("  " + truncate(m.current, m.width-4)))
		b.WriteString("\n")
	}
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *analyzeModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *analyzeModel) apply(ev Event) tea.Cmd {
	switch ev.Kind {
	case EventStart:
		m.total = ev.Total
		return nil
	case EventFile:
		m.parsed++
		m.current = ev.Label
		if m.total > 0 {
			return m.bar.SetPercent(float64(m.parsed) / float64(m.total))
		}
	case EventDone:
		m.done = true
		return tea.Quit
	}
	return nil
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
