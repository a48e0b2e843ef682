package mutate

import (
	"testing"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

func TestTaskLifecycle(t *testing.T) {
	db := store.New()
	AddProject(db, model.Project{Name: "Site"})

	task := AddTask(db, model.Task{Title: "Build header", ProjectID: 1, Status: model.StatusNotStarted})
	if task.ID != 1 {
		t.Fatalf("expected id 1, got %d", task.ID)
	}

	done := model.StatusDone
	got, err := UpdateTask(db, task.ID, TaskPatch{Status: &done})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}
	if got.Status != model.StatusDone {
		t.Fatalf("status not applied: %s", got.Status)
	}
	if got.Title != "Build header" {
		t.Fatalf("untouched field changed: %q", got.Title)
	}

	if err := DeleteTask(db, task.ID); err != nil {
		t.Fatalf("DeleteTask error: %v", err)
	}
	if len(db.Tasks) != 0 {
		t.Fatalf("expected empty task list, got %d", len(db.Tasks))
	}
	if err := DeleteTask(db, task.ID); err == nil {
		t.Fatalf("expected error deleting missing task")
	}
}

func TestEventLifecycle(t *testing.T) {
	db := store.New()
	ev := AddEvent(db, model.CalendarEvent{Title: "Sprint review", StartDate: "2026-09-05", EndDate: "2026-09-05"})
	if ev.ID != 1 {
		t.Fatalf("expected id 1, got %d", ev.ID)
	}

	end := "2026-09-06"
	got, err := UpdateEvent(db, ev.ID, EventPatch{EndDate: &end})
	if err != nil {
		t.Fatalf("UpdateEvent error: %v", err)
	}
	if got.EndDate != "2026-09-06" {
		t.Fatalf("end date not applied: %q", got.EndDate)
	}

	if err := DeleteEvent(db, ev.ID); err != nil {
		t.Fatalf("DeleteEvent error: %v", err)
	}
	if len(db.Events) != 0 {
		t.Fatalf("expected no events, got %d", len(db.Events))
	}
}
