package calendar

import (
	"fmt"
	"time"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

type SpanKind string

const (
	SpanEvent   SpanKind = "event"
	SpanProject SpanKind = "project"
)

// Span is a candidate for bar placement: a calendar event, or a project
// currently in progress.
type Span struct {
	Key   string // "event-3" / "project-1", unique across both sources
	Title string
	Color string
	Kind  SpanKind
	ID    int
	Start time.Time
	End   time.Time
}

// Bar is one horizontal segment of a span within a single week. A span
// covering several weeks yields one independent Bar per week.
type Bar struct {
	Span
	StartCol int // 0-6, column of the first covered cell
	Cols     int // number of covered cells, 1-7
}

// Spans collects placement candidates from the store: every calendar event,
// plus every project with status in_progress. Items with unparsable dates
// are skipped rather than guessed at.
func Spans(db *store.DB) []Span {
	var out []Span
	for _, e := range db.Events {
		start, ok1 := ParseDate(e.StartDate)
		end, ok2 := ParseDate(e.EndDate)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, Span{
			Key:   fmt.Sprintf("event-%d", e.ID),
			Title: e.Title,
			Color: e.Color,
			Kind:  SpanEvent,
			ID:    e.ID,
			Start: start,
			End:   end,
		})
	}
	for _, p := range db.Projects {
		if p.Status != model.StatusInProgress {
			continue
		}
		start, ok1 := ParseDate(p.StartDate)
		end, ok2 := ParseDate(p.EndDate)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, Span{
			Key:   fmt.Sprintf("project-%d", p.ID),
			Title: p.Name,
			Color: p.Color,
			Kind:  SpanProject,
			ID:    p.ID,
			Start: start,
			End:   end,
		})
	}
	return out
}

// BarsForWeek places every span that overlaps the week.
//
// A span belongs to the week iff start <= week.End && end >= week.Start.
// StartCol is the in-week index of the start date and Cols the inclusive
// day count to the end date; a start before the week clamps StartCol to 0,
// an end after it clamps Cols to 7-StartCol. When neither endpoint matches
// a cell exactly (both lie outside), the defaults 0/7 draw the bar across
// the full week. Exact columns only matter for endpoints inside the
// visible week.
func BarsForWeek(week Week, spans []Span) []Bar {
	var bars []Bar
	for _, sp := range spans {
		if sp.Start.After(week.End()) || sp.End.Before(week.Start()) {
			continue
		}

		startCol := 0
		cols := 7
		for i, day := range week.Days {
			if day.Date.Equal(sp.Start) {
				startCol = i
			}
			if day.Date.Equal(sp.End) {
				cols = i - startCol + 1
				break
			}
		}
		if sp.Start.Before(week.Start()) {
			startCol = 0
		}
		if sp.End.After(week.End()) {
			cols = 7 - startCol
		}

		bars = append(bars, Bar{Span: sp, StartCol: startCol, Cols: cols})
	}
	return bars
}
