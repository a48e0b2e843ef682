package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form is a small modal: a stack of labeled text inputs, tab to move
// between them, enter to submit, esc to cancel. submit returns a toast
// message or an error; on error the form stays open so the user can fix
// the input. submit receives the model updateForm is running on, so
// list refreshes and option writes land on the model the program keeps.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
	submit func(m *appModel, vals []string) (string, error)
}

func textField(label, value string) formField {
	return formField{label: label, value: value}
}

type formField struct {
	label string
	value string
}

func newForm(title string, fields ...formField) *form {
	f := &form{title: title}
	for i, fld := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 200
		in.SetValue(fld.value)
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, fld.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f *form) values() []string {
	vals := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		vals[i] = strings.TrimSpace(in.Value())
	}
	return vals
}

func (f *form) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (m appModel) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch key.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return m, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
		return m, nil
	case "enter":
		msg, err := f.submit(&m, f.values())
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.form = nil
		if msg == "" {
			return m, nil
		}
		return m, m.say(msg)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(key)
	f.err = ""
	return m, cmd
}

func (f *form) view(width int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(f.title))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			b.WriteString(lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(label))
		} else {
			b.WriteString(footerStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter: save  tab: next field  esc: cancel"))

	w := width - 4
	if w > 72 {
		w = 72
	}
	return cardStyle.BorderForeground(colorSelectedBorder).Width(w).Render(b.String())
}
