package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/mutate"
	"taskdeck-cli/internal/store"
)

func (m appModel) updateSettings(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "e":
		m.form = m.profileForm()
		return m, nil
	case "u":
		if glyphs() == glyphSetUnicode {
			setGlyphs(glyphSetASCII)
		} else {
			setGlyphs(glyphSetUnicode)
		}
		return m, m.say("glyphs: " + glyphsName())
	case "t":
		// Flips which side of the adaptive palette styles resolve to.
		lipgloss.SetHasDarkBackground(!lipgloss.HasDarkBackground())
		return m, m.say("theme: " + themeName())
	}
	return m, nil
}

func (m appModel) viewSettings() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Profile"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s %s\n",
		headerStyle.Render(store.MemberInitials(m.opts.UserName)),
		m.opts.UserName,
		footerStyle.Render("<"+m.opts.UserEmail+">")))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Appearance"))
	b.WriteString("\n")
	b.WriteString("  glyphs: " + glyphsName() + "\n")
	b.WriteString("  theme: " + themeName() + "\n")
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Data"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %d projects, %d tasks, %d teams, %d events\n",
		len(m.db.Projects), len(m.db.Tasks), len(m.db.Teams), len(m.db.Events)))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("e: edit profile  u: toggle glyphs  t: toggle theme"))
	return b.String()
}

func themeName() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func (m appModel) profileForm() *form {
	f := newForm("Edit profile",
		textField("Name", m.opts.UserName),
		textField("Email", m.opts.UserEmail),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		if err := mutate.RequireFields(map[string]string{"name": vals[0]}, "name"); err != nil {
			return "", err
		}
		if !mutate.ValidEmail(vals[1]) {
			return "", fmt.Errorf("invalid email: %q", vals[1])
		}
		m.opts.UserName = vals[0]
		m.opts.UserEmail = vals[1]
		return "profile updated", nil
	}
	return f
}
