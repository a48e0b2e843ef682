package mutate

import (
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// ProjectPatch carries partial updates; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *model.TaskStatus
	Progress    *int
	StartDate   *string
	EndDate     *string
	Team        *[]string
	Color       *string
}

// AddProject assigns the next id and appends. Field validation is the form
// layer's job; the store accepts what it is given.
func AddProject(db *store.DB, p model.Project) model.Project {
	p.ID = db.NextProjectID()
	db.Projects = append(db.Projects, p)
	db.Changed()
	return p
}

func UpdateProject(db *store.DB, id int, patch ProjectPatch) (model.Project, error) {
	p, ok := db.FindProject(id)
	if !ok {
		return model.Project{}, errNotFound("project", id)
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.Team != nil {
		p.Team = *patch.Team
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	db.Changed()
	return *p, nil
}

type DeleteProjectResult struct {
	// TasksRemoved counts the cascade: every task whose ProjectID matched.
	TasksRemoved int
}

// DeleteProject removes the project and cascades to its tasks. Teams keep
// their (informal) project-id associations; those are display-only.
func DeleteProject(db *store.DB, id int) (DeleteProjectResult, error) {
	if _, ok := db.FindProject(id); !ok {
		return DeleteProjectResult{}, errNotFound("project", id)
	}

	kept := db.Projects[:0]
	for _, p := range db.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	db.Projects = kept

	removed := 0
	keptTasks := db.Tasks[:0]
	for _, t := range db.Tasks {
		if t.ProjectID == id {
			removed++
			continue
		}
		keptTasks = append(keptTasks, t)
	}
	db.Tasks = keptTasks

	db.Changed()
	return DeleteProjectResult{TasksRemoved: removed}, nil
}
