// Package chat implements the helpdesk widget's canned-response bot: a
// keyword table matched against the user's message, with a fixed simulated
// reply delay.
package chat

import (
	"strings"
	"time"
)

// ReplyDelay is the simulated "typing" delay before a bot reply appears.
// Fire-and-forget: rapid sends are answered in natural delivery order.
const ReplyDelay = 800 * time.Millisecond

const Welcome = `Welcome to the project board!

Ask me about **projects**, **tasks**, the **calendar**, **teams**, or
**settings** and I'll point you in the right direction.`

// Ordered so matching is deterministic; first hit wins.
var responses = []struct {
	keyword string
	reply   string
}{
	{"project", "Manage projects in the **Projects** view: create, edit and delete them and track each one's progress. Deleting a project also removes its tasks."},
	{"task", "The **Tasks** view lists every task. Create new ones, set priority and assignee, and filter by status, priority, project or title."},
	{"calendar", "The **Calendar** view shows a month grid with bars for events and in-progress projects, plus the next ten upcoming deadlines."},
	{"schedule", "The **Calendar** view shows a month grid with bars for events and in-progress projects, plus the next ten upcoming deadlines."},
	{"team", "In the **Teams** view you can see members, the monthly leaderboard, send invitations by email and join a team with an invite code."},
	{"invite", "Each team has a 6-character invite code. Copy it from the Teams view, or press `g` there to join a team by code."},
	{"dashboard", "The **Dashboard** shows totals: all tasks, completed, in progress and overdue, plus your most recent tasks."},
	{"overdue", "A task counts as overdue when its due date is before today and it isn't done yet. The dashboard tracks the total."},
	{"settings", "Open **Settings** to change your display name and email (used for invitations) and toggle the glyph set."},
	{"delete", "Deletion is permanent: there is no undo, and removing a project removes all of its tasks with it."},
	{"status", "Tasks and projects are either not started, in progress, or done. In-progress projects also show up on the calendar."},
	{"priority", "Priorities are low, medium and high. Use them with the task filters to find what matters first."},
}

const fallback = `I can help with:

- projects and tasks
- the calendar and schedules
- teams and invitations
- settings

Ask me about any of those!`

// Respond picks the canned reply for a message. Matching is case-insensitive
// substring on the keyword table, in table order.
func Respond(message string) string {
	m := strings.ToLower(message)
	for _, r := range responses {
		if strings.Contains(m, r.keyword) {
			return r.reply
		}
	}
	switch {
	case strings.Contains(m, "thank"):
		return "Happy to help! Ask again any time."
	case strings.Contains(m, "hello"), strings.Contains(m, "hi "), m == "hi":
		return "Hello! What can I help you with today?"
	case strings.Contains(m, "how"), strings.Contains(m, "what"):
		return "Could you be more specific? I know about projects, tasks, the calendar, teams and settings."
	}
	return fallback
}
