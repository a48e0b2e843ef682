package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"taskdeck-cli/internal/calendar"
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/mutate"
	"taskdeck-cli/internal/store"
)

const maxBarRows = 3

func (m appModel) updateCalendar(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "[", "h":
		m.month = m.month.AddDate(0, -1, 0)
		return m, nil
	case "]", "l":
		m.month = m.month.AddDate(0, 1, 0)
		return m, nil
	case "t":
		now := m.db.Clock()
		m.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return m, nil
	case "a":
		m.form = m.newEventForm()
		return m, nil
	case "j", "down":
		if m.upcomingCursor < len(calendar.Upcoming(m.db, m.db.Clock()))-1 {
			m.upcomingCursor++
		}
		return m, nil
	case "k", "up":
		if m.upcomingCursor > 0 {
			m.upcomingCursor--
		}
		return m, nil
	case "x":
		items := calendar.Upcoming(m.db, m.db.Clock())
		if m.upcomingCursor < len(items) {
			it := items[m.upcomingCursor]
			if it.Kind != calendar.UpcomingEvent {
				return m, m.say("only events can be removed here")
			}
			if err := mutate.DeleteEvent(m.db, it.ID); err != nil {
				return m, m.sayErr(err)
			}
			if m.upcomingCursor > 0 {
				m.upcomingCursor--
			}
			return m, m.say(fmt.Sprintf("deleted event %q", it.Title))
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) viewCalendar() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.month.Format("January 2006")))
	b.WriteString("  ")
	b.WriteString(footerStyle.Render("[/]: month  t: today  a: add event"))
	b.WriteString("\n\n")

	cellW := (m.bodyWidth() - 8) / 7
	if cellW < 6 {
		cellW = 6
	}
	if cellW > 14 {
		cellW = 14
	}

	b.WriteString(weekdayHeader(cellW))
	b.WriteString("\n")

	grid := calendar.MonthGrid(m.month.Year(), m.month.Month())
	spans := calendar.Spans(m.db)
	today := m.db.Today()

	for _, week := range grid {
		b.WriteString(m.renderWeek(week, spans, today, cellW))
	}

	b.WriteString("\n")
	b.WriteString(m.renderUpcoming())
	return b.String()
}

func weekdayHeader(cellW int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var cells []string
	for _, n := range names {
		cells = append(cells, footerStyle.Width(cellW).Render(n))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m appModel) renderWeek(week calendar.Week, spans []calendar.Span, today string, cellW int) string {
	var b strings.Builder

	var dayCells []string
	for _, d := range week.Days {
		label := fmt.Sprintf("%2d", d.Date.Day())
		st := lipgloss.NewStyle().Width(cellW)
		switch {
		case calendar.DateString(d.Date) == today:
			st = st.Foreground(colorAccentFg).Background(colorAccent).Bold(true)
		case !d.InMonth:
			st = faintIfDark(st.Foreground(colorMuted))
		}
		dayCells = append(dayCells, st.Render(label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, dayCells...))
	b.WriteString("\n")

	bars := calendar.BarsForWeek(week, spans)
	if len(bars) > maxBarRows {
		bars = bars[:maxBarRows]
	}
	for _, bar := range bars {
		pad := strings.Repeat(" ", bar.StartCol*cellW)
		width := bar.Cols * cellW
		text := ansi.Truncate(glyphBar()+" "+bar.Title, width-1, "…")
		st := lipgloss.NewStyle().Foreground(entityColor(bar.Color)).Width(width)
		b.WriteString(pad)
		b.WriteString(st.Render(text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) renderUpcoming() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Upcoming"))
	b.WriteString("\n")
	items := calendar.Upcoming(m.db, m.db.Clock())
	if len(items) == 0 {
		b.WriteString(footerStyle.Render("  nothing scheduled"))
		b.WriteString("\n")
		return b.String()
	}
	for i, it := range items {
		cursor := "  "
		if i == m.upcomingCursor {
			cursor = glyphArrow() + " "
		}
		dot := lipgloss.NewStyle().Foreground(entityColor(it.Color)).Render(glyphDot())
		line := fmt.Sprintf("%s%s %s  %s", cursor, dot, calendar.DateString(it.Date), it.Title)
		if it.Kind == calendar.UpcomingTask && it.Priority != "" {
			line += "  " + lipgloss.NewStyle().Foreground(priorityColor(it.Priority)).Render(string(it.Priority))
		}
		if it.Info != "" {
			line += "  " + footerStyle.Render(it.Info)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) newEventForm() *form {
	f := newForm("New event",
		textField("Title", ""),
		textField("Start date (YYYY-MM-DD)", m.db.Today()),
		textField("End date (YYYY-MM-DD)", m.db.Today()),
		textField("Type (event/busy/meeting/deadline/other)", "event"),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		if err := mutate.RequireFields(map[string]string{"title": vals[0], "start date": vals[1]}, "title", "start date"); err != nil {
			return "", err
		}
		if err := mutate.ValidDateRange(vals[1], vals[2]); err != nil {
			return "", err
		}
		typ, err := store.ParseEventType(vals[3])
		if err != nil {
			return "", err
		}
		ev := mutate.AddEvent(m.db, model.CalendarEvent{
			Title:     vals[0],
			StartDate: vals[1],
			EndDate:   vals[2],
			Type:      typ,
		})
		return fmt.Sprintf("added event %q", ev.Title), nil
	}
	return f
}
