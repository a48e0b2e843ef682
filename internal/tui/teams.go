package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/mutate"
	"taskdeck-cli/internal/stats"
	"taskdeck-cli/internal/store"
)

func (m appModel) selectedTeam() (model.Team, bool) {
	it, ok := m.teamsList.SelectedItem().(teamItem)
	if !ok {
		return model.Team{}, false
	}
	// The list holds a snapshot; reread so mutations show up immediately.
	if t, ok := m.db.FindTeam(it.team.ID); ok {
		return *t, true
	}
	return model.Team{}, false
}

func (m appModel) updateTeams(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "n":
		m.form = m.newTeamForm()
		return m, nil
	case "d":
		if t, ok := m.selectedTeam(); ok {
			if err := mutate.DeleteTeam(m.db, t.ID); err != nil {
				return m, m.sayErr(err)
			}
			m.refreshTeams()
			return m, m.say(fmt.Sprintf("deleted team %q", t.Name))
		}
		return m, nil
	case "J":
		if t, ok := m.selectedTeam(); ok && m.memberCursor < len(t.Members)-1 {
			m.memberCursor++
		}
		return m, nil
	case "K":
		if m.memberCursor > 0 {
			m.memberCursor--
		}
		return m, nil
	case "r":
		if t, ok := m.selectedTeam(); ok && m.memberCursor < len(t.Members) {
			mem := t.Members[m.memberCursor]
			if err := mutate.RemoveMember(m.db, t.ID, mem.ID); err != nil {
				return m, m.sayErr(err)
			}
			if m.memberCursor > 0 {
				m.memberCursor--
			}
			m.refreshTeams()
			return m, m.say(fmt.Sprintf("removed %s from %s", mem.Name, t.Name))
		}
		return m, nil
	case "m":
		if t, ok := m.selectedTeam(); ok {
			m.form = m.addMemberForm(t)
		}
		return m, nil
	case "c":
		if t, ok := m.selectedTeam(); ok {
			if err := copyToClipboard(t.InviteCode); err != nil {
				return m, m.sayErr(err)
			}
			return m, m.say("invite code copied: " + t.InviteCode)
		}
		return m, nil
	case "i":
		if t, ok := m.selectedTeam(); ok {
			m.form = m.inviteForm(t)
		}
		return m, nil
	case "g":
		m.form = m.joinForm()
		return m, nil
	case ",":
		if m.invCursor > 0 {
			m.invCursor--
		}
		return m, nil
	case ".":
		if m.invCursor < m.pendingInvitations()-1 {
			m.invCursor++
		}
		return m, nil
	case "y":
		return m.resolveInvitation(true)
	case "x":
		return m.resolveInvitation(false)
	}

	var cmd tea.Cmd
	m.teamsList, cmd = m.teamsList.Update(key)
	if key.String() == "up" || key.String() == "down" || key.String() == "j" || key.String() == "k" {
		m.memberCursor = 0
	}
	return m, cmd
}

func (m appModel) resolveInvitation(accept bool) (tea.Model, tea.Cmd) {
	pend := stats.PendingInvitations(m.db, m.opts.UserEmail)
	if m.invCursor >= len(pend) {
		return m, nil
	}
	inv := pend[m.invCursor]
	if m.invCursor > 0 {
		m.invCursor--
	}
	if !accept {
		if _, err := mutate.RejectInvitation(m.db, inv.ID); err != nil {
			return m, m.sayErr(err)
		}
		return m, m.say("declined invitation to " + inv.TeamName)
	}
	if _, err := mutate.AcceptInvitation(m.db, inv.ID, m.selfMember()); err != nil {
		return m, m.sayErr(err)
	}
	m.refreshTeams()
	return m, m.say("joined " + inv.TeamName)
}

// selfMember builds the current user's membership record from the profile
// options. The id is time-based like every other member id.
func (m appModel) selfMember() model.TeamMember {
	return model.TeamMember{
		ID:     m.db.NextMemberID(),
		Name:   m.opts.UserName,
		Email:  m.opts.UserEmail,
		Role:   "Member",
		Avatar: store.MemberInitials(m.opts.UserName),
		Status: model.PresenceOnline,
	}
}

func (m appModel) viewTeams() string {
	left := m.teamsList.View()
	right := m.viewTeamDetail()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return body + "\n" + m.viewInvitations()
}

func (m appModel) viewTeamDetail() string {
	t, ok := m.selectedTeam()
	if !ok {
		return footerStyle.Render("no team selected (n: create  g: join by code)")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(t.Name))
	b.WriteString("  ")
	b.WriteString(footerStyle.Render("code " + t.InviteCode))
	b.WriteString("\n")
	ts := stats.TeamStatsFor(m.db, t)
	b.WriteString(footerStyle.Render(fmt.Sprintf("%d members  %d/%d tasks done", len(t.Members), ts.Done, ts.TotalTasks)))
	b.WriteString("\n\n")

	for i, mem := range t.Members {
		cursor := "  "
		if i == m.memberCursor {
			cursor = glyphArrow() + " "
		}
		pres := lipgloss.NewStyle().Foreground(presenceColor(mem.Status)).Render(glyphDot())
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s\n", cursor, pres,
			lipgloss.NewStyle().Bold(true).Render(mem.Avatar), mem.Name,
			footerStyle.Render(mem.Role)))
	}

	board := stats.Leaderboard(m.db, t)
	if len(board) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Leaderboard"))
		b.WriteString("\n")
		for i, e := range board {
			b.WriteString(fmt.Sprintf("  %d. %s  %d done\n", i+1, e.Member.Name, e.Done))
		}
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("J/K: member  r: remove  m: add  i: invite  c: copy code"))
	return b.String()
}

func (m appModel) viewInvitations() string {
	pend := stats.PendingInvitations(m.db, m.opts.UserEmail)
	if len(pend) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Your invitations"))
	b.WriteString("  ")
	b.WriteString(footerStyle.Render(",/.: select  y: accept  x: decline"))
	b.WriteString("\n")
	for i, inv := range pend {
		cursor := "  "
		if i == m.invCursor {
			cursor = glyphArrow() + " "
		}
		dot := lipgloss.NewStyle().Foreground(entityColor(inv.TeamColor)).Render(glyphDot())
		b.WriteString(fmt.Sprintf("%s%s %s invited you to %s\n", cursor, dot, inv.InvitedBy, inv.TeamName))
	}
	return b.String()
}

func (m appModel) newTeamForm() *form {
	f := newForm("New team",
		textField("Name", ""),
		textField("Description", ""),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		if err := mutate.RequireFields(map[string]string{"name": vals[0]}, "name"); err != nil {
			return "", err
		}
		t, err := mutate.AddTeam(m.db, model.Team{
			Name:        vals[0],
			Description: vals[1],
			Color:       "#10b981",
		})
		if err != nil {
			return "", err
		}
		m.refreshTeams()
		return fmt.Sprintf("created team %q (code %s)", t.Name, t.InviteCode), nil
	}
	return f
}

func (m appModel) addMemberForm(t model.Team) *form {
	f := newForm("Add member to "+t.Name,
		textField("Name", ""),
		textField("Email", ""),
		textField("Role", "Member"),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		if err := mutate.RequireFields(map[string]string{"name": vals[0], "email": vals[1]}, "name", "email"); err != nil {
			return "", err
		}
		if !mutate.ValidEmail(vals[1]) {
			return "", fmt.Errorf("invalid email: %q", vals[1])
		}
		mem := model.TeamMember{
			ID:     m.db.NextMemberID(),
			Name:   vals[0],
			Email:  vals[1],
			Role:   vals[2],
			Avatar: store.MemberInitials(vals[0]),
			Status: model.PresenceOffline,
		}
		if err := mutate.AddMember(m.db, t.ID, mem); err != nil {
			return "", err
		}
		m.refreshTeams()
		return fmt.Sprintf("added %s to %s", mem.Name, t.Name), nil
	}
	return f
}

func (m appModel) inviteForm(t model.Team) *form {
	f := newForm("Invite to "+t.Name, textField("Email", ""))
	f.submit = func(m *appModel, vals []string) (string, error) {
		if !mutate.ValidEmail(vals[0]) {
			return "", fmt.Errorf("invalid email: %q", vals[0])
		}
		if _, err := mutate.SendInvitation(m.db, t.ID, vals[0], m.opts.UserName); err != nil {
			return "", err
		}
		return "invitation sent to " + vals[0], nil
	}
	return f
}

func (m appModel) joinForm() *form {
	f := newForm("Join team", textField("Invite code", ""))
	f.submit = func(m *appModel, vals []string) (string, error) {
		team, err := mutate.JoinTeamByCode(m.db, vals[0], m.selfMember())
		if err != nil {
			return "", err
		}
		m.refreshTeams()
		return "joined " + team.Name, nil
	}
	return f
}
