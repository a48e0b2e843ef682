package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/stats"
)

func (m appModel) viewDashboard() string {
	s := stats.Summarize(m.db, m.db.Today())

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Projects", s.Projects, colorAccent),
		statCard("Tasks", s.TotalTasks, colorInfo),
		statCard("Done", s.Done, colorOK),
		statCard("In progress", s.InProgress, colorWarn),
		statCard("Overdue", s.Overdue, colorDanger),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Recent tasks"))
	b.WriteString("\n")
	recent := stats.RecentTasks(m.db, 5)
	if len(recent) == 0 {
		b.WriteString(faintIfDark(lipgloss.NewStyle()).Render("  no tasks yet"))
		b.WriteString("\n")
	}
	for _, t := range recent {
		dot := lipgloss.NewStyle().Foreground(statusColor(t.Status)).Render(glyphDot())
		line := fmt.Sprintf("  %s %s  %s", dot, t.Title,
			faintIfDark(lipgloss.NewStyle()).Render(stats.ProjectName(m.db, t.ProjectID)))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if pend := stats.PendingInvitations(m.db, m.opts.UserEmail); len(pend) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Invitations"))
		b.WriteString("\n")
		for _, inv := range pend {
			b.WriteString(fmt.Sprintf("  %s %s invited you to %s\n",
				glyphBullet(), inv.InvitedBy, inv.TeamName))
		}
	}
	return b.String()
}

func statCard(label string, n int, color lipgloss.TerminalColor) string {
	val := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d", n))
	return cardStyle.Render(val + "\n" + label)
}
