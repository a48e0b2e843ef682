package model

import "time"

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceAway    Presence = "away"
	PresenceOffline Presence = "offline"
)

type EventType string

const (
	EventTypeEvent    EventType = "event"
	EventTypeBusy     EventType = "busy"
	EventTypeMeeting  EventType = "meeting"
	EventTypeDeadline EventType = "deadline"
	EventTypeOther    EventType = "other"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// Dates are stored as YYYY-MM-DD strings. ISO dates compare correctly as
// strings, which keeps overdue/range checks free of timezone surprises.
type Project struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Progress    int        `json:"progress"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Team        []string   `json:"team"` // display names, not member references
	Color       string     `json:"color"`
}

type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ProjectID   int        `json:"projectId"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	Assignee    string     `json:"assignee"` // display name
	DueDate     string     `json:"dueDate"`
	Progress    int        `json:"progress"`
	Comments    int        `json:"comments"`
	Attachments int        `json:"attachments"`
}

type TeamMember struct {
	ID     int      `json:"id"` // time-based, not sequential
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Avatar string   `json:"avatar"` // initials, max 3 letters
	Status Presence `json:"status"`
	Skills []string `json:"skills"`
}

type Team struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Color       string       `json:"color"`
	CreatedAt   string       `json:"createdAt"`
	ProjectIDs  []int        `json:"projectIds"` // informal association
	InviteCode  string       `json:"inviteCode"`
	Members     []TeamMember `json:"members"`
}

// TeamInvitation snapshots the team's name and color at creation time so a
// later team rename does not retroactively alter the notification history.
type TeamInvitation struct {
	ID           int              `json:"id"`
	TeamID       int              `json:"teamId"`
	TeamName     string           `json:"teamName"`
	TeamColor    string           `json:"teamColor"`
	InvitedEmail string           `json:"invitedEmail"`
	InvitedBy    string           `json:"invitedBy"`
	CreatedAt    time.Time        `json:"createdAt"`
	Status       InvitationStatus `json:"status"`
}

type CalendarEvent struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	StartTime   string    `json:"startTime,omitempty"` // HH:MM
	EndTime     string    `json:"endTime,omitempty"`
	Color       string    `json:"color"`
	Type        EventType `json:"type"`
}
