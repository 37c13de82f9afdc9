// Package tui implements the interactive form demo: one text input per
// form field, re-validated on every keystroke, with the first error
// message rendered beneath the offending input.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inputkit/inputkit/pkg/field"
)

// Model drives a terminal form backed by a field.Form. Input content flows
// into the form on every update, so validation state is always current.
type Model struct {
	form      *field.Form
	inputs    []textinput.Model
	focus     int
	submitted bool
}

// NewModel builds the form UI. The first field receives focus.
func NewModel(form *field.Form) Model {
	fields := form.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.Name()
		in.CharLimit = 128
		in.Width = 40
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return Model{form: form, inputs: inputs}
}

// Submitted reports whether the form was completed and accepted.
func (m Model) Submitted() bool { return m.submitted }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m.moveFocus(1), nil
		case tea.KeyShiftTab, tea.KeyUp:
			return m.moveFocus(-1), nil
		case tea.KeyEnter:
			if m.form.Valid() {
				m.submitted = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.form.Fields()[m.focus].SetValue(m.inputs[m.focus].Value())
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) View() string {
	if m.submitted {
		return okStyle.Render("Form submitted.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("inputkit form demo"))
	b.WriteString("\n")
	for i, f := range m.form.Fields() {
		b.WriteString(labelStyle.Render(f.Name()))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := f.Message(); msg != "" {
			b.WriteString(errorStyle.Render("✗ " + msg))
			b.WriteString("\n")
		} else if f.Touched() && f.Value() != "" {
			b.WriteString(okStyle.Render("✓"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab: next field / enter: submit / esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Run blocks until the user submits or quits the form.
func Run(form *field.Form) error {
	if len(form.Fields()) == 0 {
		return errors.New("form has no fields")
	}
	_, err := tea.NewProgram(NewModel(form)).Run()
	return err
}
