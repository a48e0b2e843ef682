package mutate

import (
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

type EventPatch struct {
	Title       *string
	Description *string
	StartDate   *string
	EndDate     *string
	StartTime   *string
	EndTime     *string
	Color       *string
	Type        *model.EventType
}

func AddEvent(db *store.DB, e model.CalendarEvent) model.CalendarEvent {
	e.ID = db.NextEventID()
	db.Events = append(db.Events, e)
	db.Changed()
	return e
}

func UpdateEvent(db *store.DB, id int, patch EventPatch) (model.CalendarEvent, error) {
	e, ok := db.FindEvent(id)
	if !ok {
		return model.CalendarEvent{}, errNotFound("event", id)
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	if patch.StartTime != nil {
		e.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		e.EndTime = *patch.EndTime
	}
	if patch.Color != nil {
		e.Color = *patch.Color
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	db.Changed()
	return *e, nil
}

func DeleteEvent(db *store.DB, id int) error {
	if _, ok := db.FindEvent(id); !ok {
		return errNotFound("event", id)
	}
	kept := db.Events[:0]
	for _, e := range db.Events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	db.Events = kept
	db.Changed()
	return nil
}
