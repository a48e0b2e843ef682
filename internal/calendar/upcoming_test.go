package calendar

import (
	"fmt"
	"testing"
	"time"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

func TestUpcomingMergesAndSorts(t *testing.T) {
	db := store.New()
	db.Projects = []model.Project{
		{ID: 1, Name: "Active", Status: model.StatusInProgress, EndDate: "2026-09-20", Progress: 40},
		{ID: 2, Name: "Idle", Status: model.StatusNotStarted, EndDate: "2026-09-02"},
	}
	db.Tasks = []model.Task{
		{ID: 1, Title: "Due soon", ProjectID: 1, DueDate: "2026-09-05"},
		{ID: 2, Title: "Finished", ProjectID: 1, DueDate: "2026-09-05", Status: model.StatusDone},
		{ID: 3, Title: "Past due", ProjectID: 1, DueDate: "2026-08-30"},
	}
	db.Events = []model.CalendarEvent{
		{ID: 1, Title: "Kickoff", StartDate: "2026-09-01", EndDate: "2026-09-01"},
		{ID: 2, Title: "Old", StartDate: "2026-08-01", EndDate: "2026-08-01"},
	}

	got := Upcoming(db, date("2026-09-01"))

	want := []string{"event-1", "task-1", "project-1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(got), got)
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Fatalf("item %d = %s, want %s", i, got[i].Key, k)
		}
	}
}

func TestUpcomingIncludesToday(t *testing.T) {
	db := store.New()
	db.Events = []model.CalendarEvent{
		{ID: 1, Title: "Today", StartDate: "2026-09-01", EndDate: "2026-09-01"},
	}
	db.Tasks = []model.Task{
		{ID: 1, Title: "Due today", ProjectID: 1, DueDate: "2026-09-01"},
	}

	// A midday clock must not push today's items out.
	today := date("2026-09-01").Add(14 * time.Hour)
	got := Upcoming(db, today)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(got), got)
	}
}

func TestUpcomingTruncatesToTen(t *testing.T) {
	db := store.New()
	for i := 1; i <= 15; i++ {
		db.Events = append(db.Events, model.CalendarEvent{
			ID:        i,
			Title:     "E",
			StartDate: fmt.Sprintf("2026-09-%02d", i),
			EndDate:   fmt.Sprintf("2026-09-%02d", i),
		})
	}

	got := Upcoming(db, date("2026-09-01"))
	if len(got) != 10 {
		t.Fatalf("expected 10 items, got %d", len(got))
	}
	if got[9].Key != "event-10" {
		t.Fatalf("truncation kept wrong tail: %s", got[9].Key)
	}
}

func TestUpcomingProjectIgnoresHorizon(t *testing.T) {
	// In-progress projects are listed by end date no matter how far out.
	db := store.New()
	db.Projects = []model.Project{
		{ID: 1, Name: "Long haul", Status: model.StatusInProgress, EndDate: "2030-01-01"},
	}
	got := Upcoming(db, date("2026-09-01"))
	if len(got) != 1 || got[0].Kind != UpcomingProject {
		t.Fatalf("expected the far-out project, got %+v", got)
	}
}

func TestUpcomingTaskCarriesProjectContext(t *testing.T) {
	db := store.New()
	db.Projects = []model.Project{{ID: 1, Name: "Site", Color: "#3b82f6"}}
	db.Tasks = []model.Task{
		{ID: 1, Title: "Header", ProjectID: 1, DueDate: "2026-09-03",
			Assignee: "Ana Vries", Priority: model.PriorityHigh},
	}
	got := Upcoming(db, date("2026-09-01"))
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	it := got[0]
	if it.ProjectName != "Site" || it.Color != "#3b82f6" {
		t.Fatalf("project context missing: %+v", it)
	}
	if it.Assignee != "Ana Vries" || it.Priority != model.PriorityHigh {
		t.Fatalf("task extras missing: %+v", it)
	}
}
