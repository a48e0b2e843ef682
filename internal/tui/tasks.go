package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/mutate"
	"taskdeck-cli/internal/stats"
	"taskdeck-cli/internal/store"
)

// Filter cycles: each press of s/p advances to the next value, wrapping back
// to "any".
var (
	statusCycle   = []model.TaskStatus{"", model.StatusNotStarted, model.StatusInProgress, model.StatusDone}
	priorityCycle = []model.Priority{"", model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
)

func cycleStatus(cur model.TaskStatus) model.TaskStatus {
	for i, s := range statusCycle {
		if s == cur {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

func cyclePriority(cur model.Priority) model.Priority {
	for i, p := range priorityCycle {
		if p == cur {
			return priorityCycle[(i+1)%len(priorityCycle)]
		}
	}
	return ""
}

func (m appModel) selectedTask() (model.Task, bool) {
	it, ok := m.tasksList.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

func (m appModel) updateTasks(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "n":
		m.form = m.newTaskForm()
		return m, nil
	case "e":
		if t, ok := m.selectedTask(); ok {
			m.form = m.editTaskForm(t)
		}
		return m, nil
	case "d":
		if t, ok := m.selectedTask(); ok {
			if err := mutate.DeleteTask(m.db, t.ID); err != nil {
				return m, m.sayErr(err)
			}
			m.refreshTasks()
			return m, m.say(fmt.Sprintf("deleted %q", t.Title))
		}
		return m, nil
	case " ":
		// Space toggles done on the selected task.
		if t, ok := m.selectedTask(); ok {
			next := model.StatusDone
			if t.Status == model.StatusDone {
				next = model.StatusNotStarted
			}
			if _, err := mutate.UpdateTask(m.db, t.ID, mutate.TaskPatch{Status: &next}); err != nil {
				return m, m.sayErr(err)
			}
			m.refreshTasks()
		}
		return m, nil
	case "s":
		m.taskFilter.Status = cycleStatus(m.taskFilter.Status)
		m.refreshTasks()
		return m, nil
	case "p":
		m.taskFilter.Priority = cyclePriority(m.taskFilter.Priority)
		m.refreshTasks()
		return m, nil
	case "/":
		m.form = m.searchTasksForm()
		return m, nil
	case "c":
		m.taskFilter = stats.TaskFilter{}
		m.refreshTasks()
		return m, nil
	}

	var cmd tea.Cmd
	m.tasksList, cmd = m.tasksList.Update(key)
	return m, cmd
}

func (m appModel) viewTasks() string {
	return m.filterLine() + "\n" + m.tasksList.View()
}

func (m appModel) filterLine() string {
	var parts []string
	if m.taskFilter.Status != "" {
		parts = append(parts, "status="+string(m.taskFilter.Status))
	}
	if m.taskFilter.Priority != "" {
		parts = append(parts, "priority="+string(m.taskFilter.Priority))
	}
	if m.taskFilter.Query != "" {
		parts = append(parts, "search="+m.taskFilter.Query)
	}
	if len(parts) == 0 {
		return footerStyle.Render("no filters  (s: status  p: priority  /: search)")
	}
	return toastStyle.Render(strings.Join(parts, "  ") + "  (c: clear)")
}

func (m appModel) searchTasksForm() *form {
	f := newForm("Search tasks", textField("Query", m.taskFilter.Query))
	f.submit = func(m *appModel, vals []string) (string, error) {
		m.taskFilter.Query = vals[0]
		m.refreshTasks()
		return "", nil
	}
	return f
}

func (m appModel) newTaskForm() *form {
	f := newForm("New task",
		textField("Title", ""),
		textField("Project ID", ""),
		textField("Assignee", m.opts.UserName),
		textField("Due date (YYYY-MM-DD)", ""),
		textField("Priority (low/medium/high)", "medium"),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		if err := mutate.RequireFields(map[string]string{"title": vals[0], "project": vals[1]}, "title", "project"); err != nil {
			return "", err
		}
		projectID, err := strconv.Atoi(strings.TrimSpace(vals[1]))
		if err != nil {
			return "", fmt.Errorf("invalid project id: %q", vals[1])
		}
		if _, ok := m.db.FindProject(projectID); !ok {
			return "", mutate.NotFoundError{Kind: "project", ID: projectID}
		}
		prio, err := store.ParsePriority(vals[4])
		if err != nil {
			return "", err
		}
		t := mutate.AddTask(m.db, model.Task{
			Title:     vals[0],
			ProjectID: projectID,
			Assignee:  vals[2],
			DueDate:   vals[3],
			Priority:  prio,
			Status:    model.StatusNotStarted,
		})
		m.refreshTasks()
		return fmt.Sprintf("created task %q", t.Title), nil
	}
	return f
}

func (m appModel) editTaskForm(t model.Task) *form {
	f := newForm("Edit task",
		textField("Title", t.Title),
		textField("Status (not_started/in_progress/done)", string(t.Status)),
		textField("Priority (low/medium/high)", string(t.Priority)),
		textField("Due date (YYYY-MM-DD)", t.DueDate),
		textField("Assignee", t.Assignee),
	)
	f.submit = func(m *appModel, vals []string) (string, error) {
		status, err := store.ParseTaskStatus(vals[1])
		if err != nil {
			return "", err
		}
		prio, err := store.ParsePriority(vals[2])
		if err != nil {
			return "", err
		}
		patch := mutate.TaskPatch{
			Title:    &vals[0],
			Status:   &status,
			Priority: &prio,
			DueDate:  &vals[3],
			Assignee: &vals[4],
		}
		if _, err := mutate.UpdateTask(m.db, t.ID, patch); err != nil {
			return "", err
		}
		m.refreshTasks()
		return fmt.Sprintf("updated %q", vals[0]), nil
	}
	return f
}
