package playground

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/strutil/foundation/utils/stringx"
	"github.com/msto63/strutil/foundation/utils/urlx"
)

// Options configures a new playground model
type Options struct {
	Policy    urlx.Policy
	Delimiter string

	// Events delivers PolicyChangedMsg and ConfigErrorMsg values from a
	// watched config file. Nil disables live updates.
	Events <-chan tea.Msg
}

// PolicyChangedMsg carries a policy name received from the config watcher
type PolicyChangedMsg struct {
	Name string
}

// ConfigErrorMsg reports a config reload failure
type ConfigErrorMsg struct {
	Err error
}

// Model is the playground TUI model
type Model struct {
	width  int
	height int

	input    textinput.Model
	viewport viewport.Model

	policy    urlx.Policy
	delimiter string
	events    <-chan tea.Msg
	status    string
	rows      []Transform
}

// New creates a playground model with a focused input
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "type some text..."
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Focus()

	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}

	m := Model{
		input:     ti,
		viewport:  viewport.New(80, 16),
		policy:    opts.Policy,
		delimiter: opts.Delimiter,
		events:    opts.Events,
	}
	m.refresh()
	return m
}

// Init starts the cursor blink and, when configured, the config listener
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		return <-events
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.policy = m.policy.Next()
			m.status = ""
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-8, 3)
		m.input.Width = max(msg.Width-8, 10)
		m.refresh()

	case PolicyChangedMsg:
		if p, err := urlx.ParsePolicy(msg.Name); err != nil {
			m.status = describe(err)
		} else {
			m.policy = p
			m.status = ""
		}
		m.refresh()
		return m, waitForEvent(m.events)

	case ConfigErrorMsg:
		m.status = describe(msg.Err)
		return m, waitForEvent(m.events)
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.input.Value() != before {
		m.refresh()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refresh recomputes the transform rows and the viewport content
func (m *Model) refresh() {
	m.rows = Render(m.input.Value(), m.policy, m.delimiter)
	m.viewport.SetContent(m.renderRows())
}

func (m *Model) renderRows() string {
	w := nameWidth(m.rows)
	lines := make([]string, 0, len(m.rows))
	for _, r := range m.rows {
		style := ValueStyle
		if r.Err {
			style = ErrorValueStyle
		}
		lines = append(lines, NameStyle.Render(stringx.PadRight(r.Name, w, ' '))+"  "+style.Render(r.Value))
	}
	return strings.Join(lines, "\n")
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("strutil playground"))
	s.WriteString("  ")
	s.WriteString(PolicyStyle.Render("policy: " + m.policy.String()))
	s.WriteString("\n")
	s.WriteString(InputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString(StatusErrorStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(HelpStyle.Render("tab: next policy • ↑/↓: scroll • esc: quit"))

	return lipgloss.NewStyle().MaxWidth(max(m.width, 80)).Render(s.String())
}

// Policy returns the active encode policy
func (m Model) Policy() urlx.Policy { return m.policy }

// Value returns the current input text
func (m Model) Value() string { return m.input.Value() }

// Rows returns the transform rows for the current input
func (m Model) Rows() []Transform { return append([]Transform(nil), m.rows...) }

// Status returns the last config error shown in the status line
func (m Model) Status() string { return m.status }
