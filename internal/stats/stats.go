// Package stats holds the read side: aggregates and filtered views derived
// from the store. Nothing here mutates; every function is a plain query.
package stats

import (
	"taskdeck-cli/internal/calendar"
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

type Summary struct {
	Projects   int
	TotalTasks int
	Done       int
	InProgress int
	NotStarted int
	Overdue    int
}

// Summarize computes the dashboard counters. Overdue means due strictly
// before today and not done; dates are compared as calendar dates, never
// as timestamps. A task with no due date (or one that does not parse) is
// never overdue.
func Summarize(db *store.DB, today string) Summary {
	s := Summary{Projects: len(db.Projects), TotalTasks: len(db.Tasks)}
	for _, t := range db.Tasks {
		switch t.Status {
		case model.StatusDone:
			s.Done++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusNotStarted:
			s.NotStarted++
		}
		if _, ok := calendar.ParseDate(t.DueDate); !ok {
			continue
		}
		if t.DueDate < today && t.Status != model.StatusDone {
			s.Overdue++
		}
	}
	return s
}

// RecentTasks returns the first n tasks in collection order.
func RecentTasks(db *store.DB, n int) []model.Task {
	if n > len(db.Tasks) {
		n = len(db.Tasks)
	}
	return db.Tasks[:n]
}

// ProjectName resolves a project id for display, with a fallback for
// dangling references.
func ProjectName(db *store.DB, id int) string {
	if p, ok := db.FindProject(id); ok {
		return p.Name
	}
	return "unknown project"
}

// PendingInvitations is the notification feed: pending invitations for an
// email, in insertion order (newest last; no explicit sort).
func PendingInvitations(db *store.DB, email string) []model.TeamInvitation {
	var out []model.TeamInvitation
	for _, inv := range db.Invitations {
		if inv.Status == model.InvitationPending && inv.InvitedEmail == email {
			out = append(out, inv)
		}
	}
	return out
}
