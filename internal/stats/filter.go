package stats

import (
	"strings"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// Filters are conjunctive: every set criterion must match. Zero values
// ("all") pass everything through.

type TaskFilter struct {
	Status    model.TaskStatus
	Priority  model.Priority
	ProjectID int
	Query     string // case-insensitive substring on title
}

func FilterTasks(db *store.DB, f TaskFilter) []model.Task {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	var out []model.Task
	for _, t := range db.Tasks {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.ProjectID != 0 && t.ProjectID != f.ProjectID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Title), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

type ProjectFilter struct {
	Status model.TaskStatus
	Query  string // case-insensitive substring on name
}

func FilterProjects(db *store.DB, f ProjectFilter) []model.Project {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	var out []model.Project
	for _, p := range db.Projects {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
