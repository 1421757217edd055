package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// entry is one transcript line.
type entry struct {
	role string
	text string
}

// Model implements tea.Model for the chat screen.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer MarkdownRenderer

	channels *Channels

	transcript []entry
	status     string
	busy       bool
	width      int
	ready      bool
}

func newModel(channels *Channels, renderer MarkdownRenderer) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		input:    ti,
		viewport: vp,
		spinner:  sp,
		renderer: renderer,
		channels: channels,
		width:    80,
	}
}

// Internal messages
type eventMsg Event

// listenForEvents re-arms after every delivered event.
func listenForEvents(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-events)
	}
}

// sendInput hands one user line to the engine loop.
func sendInput(input chan<- string, line string) tea.Cmd {
	return func() tea.Msg {
		input <- line
		return nil
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		listenForEvents(m.channels.Events),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line == "" || m.busy {
				break
			}
			m.input.Reset()
			m.busy = true
			m.status = "waiting for model..."
			m.transcript = append(m.transcript, entry{role: "user", text: line})
			m.refreshViewport()
			cmds = append(cmds, sendInput(m.channels.UserInput, line))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		m.input.Width = msg.Width - 6
		m.ready = true
		m.refreshViewport()

	case eventMsg:
		m.applyEvent(Event(msg))
		cmds = append(cmds, listenForEvents(m.channels.Events))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) applyEvent(ev Event) {
	switch ev.Kind {
	case EventMessage:
		m.transcript = append(m.transcript, entry{role: ev.Role, text: ev.Text})
		m.refreshViewport()
	case EventStatus:
		m.status = ev.Text
	case EventError:
		m.transcript = append(m.transcript, entry{role: "error", text: ev.Text})
		m.busy = false
		m.status = ""
		m.refreshViewport()
	case EventRoundDone:
		m.busy = false
		m.status = ""
	}
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(formatTranscript(m.transcript, m.width, m.renderer))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString(statusStyle.Render(m.spinner.View() + " " + m.status))
	}
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	return b.String()
}

// formatTranscript renders the transcript for the viewport. Assistant
// turns go through the markdown renderer; everything else is styled
// plain text.
func formatTranscript(transcript []entry, width int, renderer MarkdownRenderer) string {
	if len(transcript) == 0 {
		return "No messages yet. Type a message to start."
	}
	var lines []string
	for _, e := range transcript {
		switch e.role {
		case "user":
			lines = append(lines, userStyle.Render("You: "+e.text))
		case "tool":
			lines = append(lines, toolStyle.Render(e.text))
		case "error":
			lines = append(lines, errorStyle.Render("Error: "+e.text))
		default:
			rendered, err := renderer.Render(e.text, width)
			if err != nil {
				lines = append(lines, e.text)
			} else {
				lines = append(lines, strings.TrimRight(rendered, "\n"))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
