package calendar

import (
	"fmt"
	"sort"
	"time"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

const upcomingLimit = 10

type UpcomingKind string

const (
	UpcomingProject UpcomingKind = "project"
	UpcomingTask    UpcomingKind = "task"
	UpcomingEvent   UpcomingKind = "event"
)

type UpcomingItem struct {
	Key   string
	ID    int
	Title string
	Date  time.Time
	Kind  UpcomingKind
	Color string
	Info  string // "45% complete", "09:00 - 10:30", ...

	// Task extras.
	ProjectName string
	Assignee    string
	Priority    model.Priority
}

// Upcoming merges three sources into one date-ascending list, truncated to
// the first 10: in-progress projects keyed by end date (regardless of how
// far out), incomplete tasks due today or later, and events starting today
// or later.
func Upcoming(db *store.DB, today time.Time) []UpcomingItem {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var out []UpcomingItem

	for _, p := range db.Projects {
		if p.Status != model.StatusInProgress {
			continue
		}
		end, ok := ParseDate(p.EndDate)
		if !ok {
			continue
		}
		out = append(out, UpcomingItem{
			Key:   fmt.Sprintf("project-%d", p.ID),
			ID:    p.ID,
			Title: p.Name,
			Date:  end,
			Kind:  UpcomingProject,
			Color: p.Color,
			Info:  fmt.Sprintf("%d%% complete", p.Progress),
		})
	}

	for _, t := range db.Tasks {
		if t.Status == model.StatusDone {
			continue
		}
		due, ok := ParseDate(t.DueDate)
		if !ok || due.Before(today) {
			continue
		}
		item := UpcomingItem{
			Key:      fmt.Sprintf("task-%d", t.ID),
			ID:       t.ID,
			Title:    t.Title,
			Date:     due,
			Kind:     UpcomingTask,
			Color:    "#8b5cf6",
			Assignee: t.Assignee,
			Priority: t.Priority,
		}
		if p, ok := db.FindProject(t.ProjectID); ok {
			item.ProjectName = p.Name
			item.Color = p.Color
		}
		out = append(out, item)
	}

	for _, e := range db.Events {
		start, ok := ParseDate(e.StartDate)
		if !ok || start.Before(today) {
			continue
		}
		info := ""
		if e.StartTime != "" {
			info = e.StartTime
			if e.EndTime != "" {
				info += " - " + e.EndTime
			}
		}
		out = append(out, UpcomingItem{
			Key:   fmt.Sprintf("event-%d", e.ID),
			ID:    e.ID,
			Title: e.Title,
			Date:  start,
			Kind:  UpcomingEvent,
			Color: e.Color,
			Info:  info,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}
