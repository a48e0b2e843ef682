package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"taskdeck-cli/internal/model"
)

type projectItem struct {
	project model.Project
}

func (i projectItem) FilterValue() string { return i.project.Name }
func (i projectItem) Title() string       { return i.project.Name }
func (i projectItem) Description() string {
	return fmt.Sprintf("%s  %d%%  %s %s %s",
		statusLabel(i.project.Status), i.project.Progress,
		i.project.StartDate, glyphArrow(), i.project.EndDate)
}

type taskItem struct {
	task        model.Task
	projectName string
}

func (i taskItem) FilterValue() string { return i.task.Title }
func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string {
	return fmt.Sprintf("%s  %s  %s  due %s  %s",
		i.projectName, statusLabel(i.task.Status), i.task.Priority,
		i.task.DueDate, i.task.Assignee)
}

type teamItem struct {
	team model.Team
}

func (i teamItem) FilterValue() string { return i.team.Name }
func (i teamItem) Title() string       { return i.team.Name }
func (i teamItem) Description() string {
	return fmt.Sprintf("%d members  code %s", len(i.team.Members), i.team.InviteCode)
}

func newList(title string, items []list.Item) list.Model {
	d := list.NewDefaultDelegate()
	l := list.New(items, d, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}
