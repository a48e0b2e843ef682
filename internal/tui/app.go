package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/stats"
	"taskdeck-cli/internal/store"
)

type view int

const (
	viewDashboard view = iota
	viewProjects
	viewTasks
	viewCalendar
	viewTeams
	viewSettings
	viewCount
)

var viewNames = [viewCount]string{
	"Dashboard", "Projects", "Tasks", "Calendar", "Teams", "Settings",
}

type toastClearMsg struct{}

type appModel struct {
	db   *store.DB
	opts Options

	width  int
	height int

	view view

	projectsList list.Model
	tasksList    list.Model
	teamsList    list.Model

	taskFilter stats.TaskFilter

	month          time.Time // first day of the displayed month
	upcomingCursor int

	memberCursor int
	invCursor    int

	form *form
	chat chatState

	toast    string
	toastErr bool
}

func newAppModel(db *store.DB, opts Options) appModel {
	now := db.Clock()
	m := appModel{
		db:    db,
		opts:  opts,
		view:  viewDashboard,
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		chat:  newChatState(),
	}

	m.projectsList = newList("Projects", nil)
	m.tasksList = newList("Tasks", nil)
	m.teamsList = newList("Teams", nil)

	m.refreshAll()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case toastClearMsg:
		m.toast = ""
		m.toastErr = false
		return m, nil

	case botReplyMsg:
		m.chat.deliver(msg)
		return m, nil
	}

	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m.updateActiveList(msg)
	}

	// Modal layers eat keys first: an open form, then the chat widget.
	if m.form != nil {
		return m.updateForm(key)
	}
	if m.chat.open {
		return m.updateChat(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.chat.open = true
		return m, nil
	case "tab":
		m.view = (m.view + 1) % viewCount
		return m, nil
	case "shift+tab":
		m.view = (m.view + viewCount - 1) % viewCount
		return m, nil
	case "1", "2", "3", "4", "5", "6":
		m.view = view(key.String()[0] - '1')
		return m, nil
	}

	switch m.view {
	case viewProjects:
		return m.updateProjects(key)
	case viewTasks:
		return m.updateTasks(key)
	case viewCalendar:
		return m.updateCalendar(key)
	case viewTeams:
		return m.updateTeams(key)
	case viewSettings:
		return m.updateSettings(key)
	}
	return m, nil
}

func (m appModel) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewProjects:
		m.projectsList, cmd = m.projectsList.Update(msg)
	case viewTasks:
		m.tasksList, cmd = m.tasksList.Update(msg)
	case viewTeams:
		m.teamsList, cmd = m.teamsList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch m.view {
	case viewDashboard:
		body = m.viewDashboard()
	case viewProjects:
		body = m.projectsList.View()
	case viewTasks:
		body = m.viewTasks()
	case viewCalendar:
		body = m.viewCalendar()
	case viewTeams:
		body = m.viewTeams()
	case viewSettings:
		body = m.viewSettings()
	}

	if m.form != nil {
		body = m.form.view(m.bodyWidth())
	}

	sections := []string{m.viewHeader(), body}
	if m.chat.open {
		sections = append(sections, m.viewChat())
	}
	sections = append(sections, m.viewFooter())
	return strings.Join(sections, "\n")
}

func (m appModel) viewHeader() string {
	var tabs []string
	for v := view(0); v < viewCount; v++ {
		label := viewNames[v]
		if n := m.pendingInvitations(); v == viewTeams && n > 0 {
			label = labelWithBadge(label, n)
		}
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m appModel) viewFooter() string {
	if m.toast != "" {
		if m.toastErr {
			return errStyle.Render(m.toast)
		}
		return toastStyle.Render(m.toast)
	}
	return footerStyle.Render("1-6/tab: views  ?: chat  q: quit")
}

func (m appModel) pendingInvitations() int {
	return len(stats.PendingInvitations(m.db, m.opts.UserEmail))
}

func labelWithBadge(label string, n int) string {
	return label + " " + glyphDot() + strconv.Itoa(n)
}

func (m *appModel) say(text string) tea.Cmd {
	m.toast = text
	m.toastErr = false
	return clearToast()
}

func (m *appModel) sayErr(err error) tea.Cmd {
	m.toast = err.Error()
	m.toastErr = true
	return clearToast()
}

func clearToast() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return toastClearMsg{} })
}

func (m *appModel) resize() {
	h := m.height - 4 // header, footer
	if h < 8 {
		h = 8
	}
	w := m.bodyWidth()
	m.projectsList.SetSize(w, h)
	m.tasksList.SetSize(w, h)
	m.teamsList.SetSize(w/2, h)
}

func (m appModel) bodyWidth() int {
	if m.width < 40 {
		return 40
	}
	return m.width
}

func (m *appModel) refreshAll() {
	m.refreshProjects()
	m.refreshTasks()
	m.refreshTeams()
}

func (m *appModel) refreshProjects() {
	var items []list.Item
	for _, p := range m.db.Projects {
		items = append(items, projectItem{project: p})
	}
	m.projectsList.SetItems(items)
}

func (m *appModel) refreshTasks() {
	var items []list.Item
	for _, t := range stats.FilterTasks(m.db, m.taskFilter) {
		items = append(items, taskItem{task: t, projectName: stats.ProjectName(m.db, t.ProjectID)})
	}
	m.tasksList.SetItems(items)
}

func (m *appModel) refreshTeams() {
	var items []list.Item
	for _, t := range m.db.Teams {
		items = append(items, teamItem{team: t})
	}
	m.teamsList.SetItems(items)
	if m.memberCursor > 0 {
		m.memberCursor = 0
	}
	if m.invCursor > 0 {
		m.invCursor = 0
	}
}
