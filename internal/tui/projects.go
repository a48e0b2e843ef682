package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/mutate"
	"taskdeck-cli/internal/store"
)

func (m appModel) selectedProject() (model.Project, bool) {
	it, ok := m.projectsList.SelectedItem().(projectItem)
	if !ok {
		return model.Project{}, false
	}
	return it.project, true
}

func (m appModel) updateProjects(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "n":
		m.form = m.newProjectForm()
		return m, nil
	case "e":
		if p, ok := m.selectedProject(); ok {
			m.form = m.editProjectForm(p)
		}
		return m, nil
	case "d":
		if p, ok := m.selectedProject(); ok {
			res, err := mutate.DeleteProject(m.db, p.ID)
			if err != nil {
				return m, m.sayErr(err)
			}
			m.refreshAll()
			return m, m.say(fmt.Sprintf("deleted %q (%d tasks removed)", p.Name, res.TasksRemoved))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.projectsList, cmd = m.projectsList.Update(key)
	return m, cmd
}

func (m appModel) newProjectForm() *form {
	f := newForm("New project",
		textField("Name", ""),
		textField("Description", ""),
		textField("Start date (YYYY-MM-DD)", m.db.Today()),
		textField("End date (YYYY-MM-DD)", ""),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		if err := mutate.RequireFields(map[string]string{"name": vals[0]}, "name"); err != nil {
			return "", err
		}
		if err := mutate.ValidDateRange(vals[2], vals[3]); err != nil {
			return "", err
		}
		p := mutate.AddProject(m.db, model.Project{
			Name:        vals[0],
			Description: vals[1],
			Status:      model.StatusNotStarted,
			StartDate:   vals[2],
			EndDate:     vals[3],
			Color:       "#3b82f6",
		})
		m.refreshProjects()
		return fmt.Sprintf("created project %q", p.Name), nil
	}
	return f
}

func (m appModel) editProjectForm(p model.Project) *form {
	f := newForm("Edit project",
		textField("Name", p.Name),
		textField("Description", p.Description),
		textField("Status (not-started/in-progress/done)", string(p.Status)),
		textField("End date (YYYY-MM-DD)", p.EndDate),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		if err := mutate.RequireFields(map[string]string{"name": vals[0]}, "name"); err != nil {
			return "", err
		}
		status, err := store.ParseTaskStatus(vals[2])
		if err != nil {
			return "", err
		}
		patch := mutate.ProjectPatch{
			Name:        &vals[0],
			Description: &vals[1],
			Status:      &status,
			EndDate:     &vals[3],
		}
		if _, err := mutate.UpdateProject(m.db, p.ID, patch); err != nil {
			return "", err
		}
		m.refreshProjects()
		return fmt.Sprintf("updated %q", vals[0]), nil
	}
	return f
}
