package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kn3ll/jui/classfile"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type memberInfo struct {
	rendered   string
	descriptor string
	static     bool
}

type inspectModel struct {
	err      error
	filename string
	class    string
	super    string
	members  []memberInfo
	visible  []memberInfo
	filter   textinput.Model
	selected int
}

func newInspectModel(filename string) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "filter members"
	ti.Focus()
	return &inspectModel{filename: filename, filter: ti}
}

type classLoadedMsg struct {
	err     error
	class   string
	super   string
	members []memberInfo
}

func (m *inspectModel) Init() tea.Cmd {
	return tea.Batch(m.loadClass, textinput.Blink)
}

func (m *inspectModel) loadClass() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return classLoadedMsg{err: err}
	}

	cf, err := classfile.ParseBytes(data)
	if err != nil {
		return classLoadedMsg{err: err}
	}

	members := make([]memberInfo, 0, len(cf.Methods))
	for _, method := range cf.Methods {
		members = append(members, memberInfo{
			rendered:   renderMethod(method),
			descriptor: method.Name + method.Descriptor,
			static:     method.IsStatic(),
		})
	}

	return classLoadedMsg{
		class:   cf.ClassName(),
		super:   cf.SuperClassName(),
		members: members,
	}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case classLoadedMsg:
		m.err = msg.err
		m.class = msg.class
		m.super = msg.super
		m.members = msg.members
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *inspectModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for _, member := range m.members {
		if query == "" || strings.Contains(strings.ToLower(member.descriptor), query) {
			m.visible = append(m.visible, member)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc to quit"))
		return b.String()
	}

	header := "class " + m.class
	if m.super != "" {
		header += " extends " + m.super
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	for i, member := range m.visible {
		padded := fmt.Sprintf("%-44s", member.rendered)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + padded))
		} else {
			b.WriteString("  " + memberStyle.Render(padded))
		}
		b.WriteString("  " + descStyle.Render(member.descriptor))
		b.WriteByte('\n')
	}

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  no members match"))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down select · type to filter · esc to quit"))
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInspectModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
