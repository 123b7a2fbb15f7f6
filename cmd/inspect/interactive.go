package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/move-binary-format/format"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	abilityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateList modelState = iota
	stateDetail
)

type structEntry struct {
	name string
	def  format.StructDefinitionIndex
}

type inspectModel struct {
	module   *format.CompiledModule
	filter   textinput.Model
	entries  []structEntry
	visible  []structEntry
	selected int
	state    modelState
}

func runInteractive(m *format.CompiledModule) error {
	p := tea.NewProgram(newInspectModel(m))
	_, err := p.Run()
	return err
}

func newInspectModel(m *format.CompiledModule) *inspectModel {
	filter := textinput.New()
	filter.Placeholder = "filter structs"
	filter.Prompt = "/ "
	filter.Width = 30

	entries := make([]structEntry, 0, len(m.StructDefsView()))
	for i := range m.StructDefsView() {
		idx := format.StructDefinitionIndex(i)
		entries = append(entries, structEntry{
			name: string(m.StructName(idx)),
			def:  idx,
		})
	}

	return &inspectModel{
		module:  m,
		filter:  filter,
		entries: entries,
		visible: entries,
		state:   stateList,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if !m.filter.Focused() {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateList && !m.filter.Focused() && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && !m.filter.Focused() && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList && !m.filter.Focused() {
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateList:
				if m.filter.Focused() {
					m.filter.Blur()
				} else if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateList
			}

		case "esc":
			switch m.state {
			case stateList:
				if m.filter.Focused() {
					m.filter.Blur()
				} else if m.filter.Value() != "" {
					m.filter.SetValue("")
					m.applyFilter()
				}
			case stateDetail:
				m.state = stateList
			}
		}
	}

	if m.state == stateList && m.filter.Focused() {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) applyFilter() {
	needle := m.filter.Value()
	if needle == "" {
		m.visible = m.entries
	} else {
		m.visible = nil
		for _, e := range m.entries {
			if strings.Contains(e.name, needle) {
				m.visible = append(m.visible, e)
			}
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Module Inspector"))
	b.WriteString(" ")
	b.WriteString(m.module.SelfID().String())
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		if len(m.visible) == 0 {
			b.WriteString(errorStyle.Render("no structs match"))
			b.WriteString("\n")
		}
		for i, e := range m.visible {
			handle := m.module.StructHandleAt(m.module.StructDefAt(e.def).StructHandle)
			line := fmt.Sprintf("%s %s", e.name, abilityStyle.Render(handle.Abilities.String()))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))

	case stateDetail:
		m.renderDetail(&b)
	}

	return b.String()
}

func (m *inspectModel) renderDetail(b *strings.Builder) {
	entry := m.visible[m.selected]
	def := m.module.StructDefAt(entry.def)
	handle := m.module.StructHandleAt(def.StructHandle)

	b.WriteString(nameStyle.Render(entry.name))
	b.WriteString(" declared ")
	b.WriteString(abilityStyle.Render(handle.Abilities.String()))
	b.WriteString("\n\n")

	if len(handle.TypeParameters) > 0 {
		b.WriteString("Type parameters:\n")
		for i, p := range handle.TypeParameters {
			marker := ""
			if p.IsPhantom {
				marker = " phantom"
			}
			fmt.Fprintf(b, "  T%d%s constraints %s\n", i, marker, p.Constraints)
		}
		b.WriteString("\n")
	}

	if def.DeclaredFieldCount() > 0 {
		b.WriteString("Fields:\n")
		for i := 0; i < def.DeclaredFieldCount(); i++ {
			field := def.FieldAt(format.MemberCount(i))
			fmt.Fprintf(b, "  %s: %s\n",
				m.module.IdentifierAt(field.Name),
				typeStyle.Render(renderToken(m.module, &field.Signature)))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Fields: native\n\n")
	}

	b.WriteString("Computed abilities:\n")
	if len(handle.TypeParameters) == 0 {
		tok := format.StructToken(def.StructHandle)
		m.renderComputed(b, entry.name, &tok)
	} else {
		for _, arg := range []format.TokenKind{format.TokenU64, format.TokenSigner} {
			args := make([]format.SignatureToken, len(handle.TypeParameters))
			for i := range args {
				args[i] = format.SignatureToken{Kind: arg}
			}
			tok := format.StructInstantiationToken(def.StructHandle, args...)
			label := fmt.Sprintf("%s<%s>", entry.name, arg)
			m.renderComputed(b, label, &tok)
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter/esc back • q quit"))
}

func (m *inspectModel) renderComputed(b *strings.Builder, label string, tok *format.SignatureToken) {
	abilities, err := m.module.Abilities(tok, nil)
	if err != nil {
		fmt.Fprintf(b, "  %s: %s\n", label, errorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", label, abilityStyle.Render(abilities.String()))
}
