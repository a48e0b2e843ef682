package store

import (
	"fmt"
	"strings"
	"time"

	"taskdeck-cli/internal/model"
)

// DB is the single owner of all application state. Everything is held in
// memory for the lifetime of the process; there is no persistence layer and
// state resets on restart.
//
// All mutations happen synchronously on the UI loop (single writer). Callers
// mutate through the mutate package, which calls Changed after each
// successful mutation so subscribed views can re-derive.
type DB struct {
	Projects    []model.Project
	Tasks       []model.Task
	Teams       []model.Team
	Invitations []model.TeamInvitation
	Events      []model.CalendarEvent

	// Now is the clock for "today" computations and invitation timestamps.
	// Tests and the --today flag pin it.
	Now func() time.Time

	listeners []func()
}

func New() *DB {
	return &DB{Now: time.Now}
}

func (db *DB) Clock() time.Time {
	if db.Now == nil {
		return time.Now()
	}
	return db.Now()
}

// Today returns the wall-clock date truncated to a calendar date.
func (db *DB) Today() string {
	return db.Clock().Format("2006-01-02")
}

// Subscribe registers a change listener. Listeners run synchronously, after
// the mutation that triggered them has fully applied.
func (db *DB) Subscribe(fn func()) {
	db.listeners = append(db.listeners, fn)
}

func (db *DB) Changed() {
	for _, fn := range db.listeners {
		fn()
	}
}

// Id assignment is max(existing ids, 0)+1 for every collection. Deleting the
// max-id entity frees its id for the next insertion; that reuse is observed,
// documented behavior, and the store tests pin it.

func (db *DB) NextProjectID() int {
	max := 0
	for _, p := range db.Projects {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (db *DB) NextTaskID() int {
	max := 0
	for _, t := range db.Tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func (db *DB) NextTeamID() int {
	max := 0
	for _, t := range db.Teams {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func (db *DB) NextInvitationID() int {
	max := 0
	for _, inv := range db.Invitations {
		if inv.ID > max {
			max = inv.ID
		}
	}
	return max + 1
}

func (db *DB) NextEventID() int {
	max := 0
	for _, e := range db.Events {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// NextMemberID is time-based rather than sequential (members live inside
// teams, so there is no single collection to take a max over).
func (db *DB) NextMemberID() int {
	return int(db.Clock().UnixMilli())
}

func (db *DB) FindProject(id int) (*model.Project, bool) {
	for i := range db.Projects {
		if db.Projects[i].ID == id {
			return &db.Projects[i], true
		}
	}
	return nil, false
}

func (db *DB) FindTask(id int) (*model.Task, bool) {
	for i := range db.Tasks {
		if db.Tasks[i].ID == id {
			return &db.Tasks[i], true
		}
	}
	return nil, false
}

func (db *DB) FindTeam(id int) (*model.Team, bool) {
	for i := range db.Teams {
		if db.Teams[i].ID == id {
			return &db.Teams[i], true
		}
	}
	return nil, false
}

func (db *DB) FindInvitation(id int) (*model.TeamInvitation, bool) {
	for i := range db.Invitations {
		if db.Invitations[i].ID == id {
			return &db.Invitations[i], true
		}
	}
	return nil, false
}

func (db *DB) FindEvent(id int) (*model.CalendarEvent, bool) {
	for i := range db.Events {
		if db.Events[i].ID == id {
			return &db.Events[i], true
		}
	}
	return nil, false
}

// FindTeamByCode matches stored codes case-insensitively against the input.
// Stored codes are generated uppercase, so uppercasing the input suffices.
func (db *DB) FindTeamByCode(code string) (*model.Team, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, false
	}
	for i := range db.Teams {
		if db.Teams[i].InviteCode == code {
			return &db.Teams[i], true
		}
	}
	return nil, false
}

// MemberInitials derives avatar initials from a display name: first letter
// of each word, uppercased, at most 3.
func MemberInitials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		initials = append(initials, []rune(word)[0])
		if len(initials) == 3 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

func ParseTaskStatus(s string) (model.TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not_started", "not-started", "notstarted", "todo":
		return model.StatusNotStarted, nil
	case "in_progress", "in-progress", "inprogress", "doing":
		return model.StatusInProgress, nil
	case "done", "completed":
		return model.StatusDone, nil
	default:
		return "", fmt.Errorf("invalid status: %q (expected not_started|in_progress|done)", s)
	}
}

func ParsePriority(s string) (model.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return model.PriorityLow, nil
	case "medium", "med":
		return model.PriorityMedium, nil
	case "high":
		return model.PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority: %q (expected low|medium|high)", s)
	}
}

func ParseEventType(s string) (model.EventType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "event":
		return model.EventTypeEvent, nil
	case "busy":
		return model.EventTypeBusy, nil
	case "meeting":
		return model.EventTypeMeeting, nil
	case "deadline":
		return model.EventTypeDeadline, nil
	case "other":
		return model.EventTypeOther, nil
	default:
		return "", fmt.Errorf("invalid event type: %q", s)
	}
}
