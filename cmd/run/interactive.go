package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/value-runtime/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	aliasStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// visibleActions is the height of the action list window.
const visibleActions = 15

type interactiveModel struct {
	err      error
	rt       *runtime.Runtime
	result   string
	actions  []actionInfo
	input    textinput.Model
	selected int
	state    modelState
}

type actionInfo struct {
	name      string
	canonical string
}

type modelState int

const (
	stateSelectAction modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(rt *runtime.Runtime) *interactiveModel {
	reg := rt.Actions()
	var actions []actionInfo
	for _, e := range reg.Entries()[1:] {
		actions = append(actions, actionInfo{
			name:      e.Name,
			canonical: reg.ResolveByPointer(e.Proc).Name,
		})
	}
	return &interactiveModel{
		rt:      rt,
		actions: actions,
		state:   stateSelectAction,
	}
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectAction && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectAction && m.selected < len(m.actions)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectAction:
				m.prepareInput()
				m.state = stateInputArgs
				return m, textinput.Blink

			case stateInputArgs:
				return m, m.callAction

			case stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}
			return m, nil

		case "esc":
			switch m.state {
			case stateInputArgs, stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}
			return m, nil
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = `"text" 3 'c' @library`
	ti.Prompt = m.actions[m.selected].name + " "
	ti.Width = 60
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) callAction() tea.Msg {
	line := m.actions[m.selected].name + " " + m.input.Value()
	out, err := eval(m.rt, line)
	return callResultMsg{result: out, err: err}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Value Runtime"))
	b.WriteString(fmt.Sprintf(" %d actions\n\n", len(m.actions)))

	switch m.state {
	case stateSelectAction:
		b.WriteString("Select an action to call:\n\n")
		lo := max(0, m.selected-visibleActions/2)
		hi := min(len(m.actions), lo+visibleActions)
		for i := lo; i < hi; i++ {
			line := m.formatAction(m.actions[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.actions[i].name))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		b.WriteString(fmt.Sprintf("Calling %s\n\n", actionStyle.Render(m.actions[m.selected].name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter call • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", actionStyle.Render(m.actions[m.selected].name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatAction(a actionInfo) string {
	if a.canonical != a.name {
		return actionStyle.Render(a.name) + " " + aliasStyle.Render("= "+a.canonical)
	}
	return actionStyle.Render(a.name)
}

func runInteractive(rt *runtime.Runtime) error {
	p := tea.NewProgram(newInteractiveModel(rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
