package mutate

import (
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

type TaskPatch struct {
	Title       *string
	Description *string
	ProjectID   *int
	Status      *model.TaskStatus
	Priority    *model.Priority
	Assignee    *string
	DueDate     *string
	Progress    *int
	Comments    *int
	Attachments *int
}

func AddTask(db *store.DB, t model.Task) model.Task {
	t.ID = db.NextTaskID()
	db.Tasks = append(db.Tasks, t)
	db.Changed()
	return t
}

func UpdateTask(db *store.DB, id int, patch TaskPatch) (model.Task, error) {
	t, ok := db.FindTask(id)
	if !ok {
		return model.Task{}, errNotFound("task", id)
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Progress != nil {
		t.Progress = *patch.Progress
	}
	if patch.Comments != nil {
		t.Comments = *patch.Comments
	}
	if patch.Attachments != nil {
		t.Attachments = *patch.Attachments
	}
	db.Changed()
	return *t, nil
}

func DeleteTask(db *store.DB, id int) error {
	if _, ok := db.FindTask(id); !ok {
		return errNotFound("task", id)
	}
	kept := db.Tasks[:0]
	for _, t := range db.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	db.Tasks = kept
	db.Changed()
	return nil
}
