package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewState int

const (
	stateBrowse viewState = iota
	stateSearch
)

type line struct {
	text   string
	opcode string
}

type dumpModel struct {
	err      error
	filename string
	module   *spv.Module
	lines    []line
	search   textinput.Model
	filter   string
	cursor   int
	height   int
	state    viewState
}

func newDumpModel(filename string) *dumpModel {
	ti := textinput.New()
	ti.Placeholder = "opcode or %id"
	ti.Prompt = "/ "
	ti.Width = 40
	return &dumpModel{
		filename: filename,
		search:   ti,
		height:   24,
	}
}

type loadedMsg struct {
	err    error
	module *spv.Module
	lines  []line
}

func (m *dumpModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *dumpModel) loadModule() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	mod, err := spv.Decode(data)
	if err != nil {
		return loadedMsg{err: err}
	}

	instrs := mod.Instructions()
	lines := make([]line, 0, len(instrs))
	for i := range instrs {
		lines = append(lines, line{
			text:   formatInstruction(&instrs[i]),
			opcode: grammar.OpcodeName(instrs[i].Opcode),
		})
	}
	return loadedMsg{module: mod, lines: lines}
}

func (m *dumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if m.state == stateSearch {
			switch msg.String() {
			case "enter":
				m.filter = m.search.Value()
				m.state = stateBrowse
				m.cursor = 0
			case "esc":
				m.state = stateBrowse
				m.search.SetValue("")
				m.filter = ""
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = len(m.visible()) - 1
		case "/":
			m.state = stateSearch
			m.search.Focus()
			return m, textinput.Blink
		case "esc":
			m.filter = ""
			m.search.SetValue("")
			m.cursor = 0
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.module = msg.module
		m.lines = msg.lines
	}

	return m, nil
}

// visible returns the lines matching the current filter.
func (m *dumpModel) visible() []line {
	if m.filter == "" {
		return m.lines
	}
	needle := strings.ToLower(m.filter)
	out := make([]line, 0, len(m.lines))
	for _, l := range m.lines {
		if strings.Contains(strings.ToLower(l.text), needle) {
			out = append(out, l)
		}
	}
	return out
}

func (m *dumpModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.module == nil {
		return "Loading module..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SPIR-V Dump"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	fmt.Fprintf(&b, "  %s  bound %d",
		idStyle.Render(m.module.Header.Version.String()),
		m.module.Header.Bound)
	b.WriteString("\n\n")

	lines := m.visible()
	window := m.height - 6
	if window < 1 {
		window = 1
	}
	start := 0
	if m.cursor >= window {
		start = m.cursor - window + 1
	}
	end := start + window
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < end; i++ {
		l := lines[i]
		text := l.text
		if m.filter != "" {
			text = matchStyle.Render(text)
		} else {
			text = strings.Replace(text, l.opcode, opStyle.Render(l.opcode), 1)
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + l.text))
		} else {
			b.WriteString("  " + text)
		}
		b.WriteString("\n")
	}
	if len(lines) == 0 {
		b.WriteString(helpStyle.Render("  no instructions match"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateSearch {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter filter • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ move • g/G top/bottom • / filter • esc clear • q quit"))
	}
	return b.String()
}

func runInteractive(filename string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newDumpModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
