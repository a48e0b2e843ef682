package stats

import (
	"sort"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// Task-to-member association is by assignee display name; the model keeps
// no member-id foreign key on tasks.

type LeaderboardEntry struct {
	Member model.TeamMember
	Done   int
	Total  int
}

// Leaderboard ranks a team's members by completed task count, descending.
// Ties keep the members' original list order.
func Leaderboard(db *store.DB, team model.Team) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(team.Members))
	for _, m := range team.Members {
		e := LeaderboardEntry{Member: m}
		for _, t := range db.Tasks {
			if t.Assignee != m.Name {
				continue
			}
			e.Total++
			if t.Status == model.StatusDone {
				e.Done++
			}
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Done > entries[j].Done })
	return entries
}

type TeamStats struct {
	TotalTasks int
	Done       int
	InProgress int
}

// TeamStatsFor counts tasks assigned to any member of the team.
func TeamStatsFor(db *store.DB, team model.Team) TeamStats {
	names := map[string]bool{}
	for _, m := range team.Members {
		names[m.Name] = true
	}
	var s TeamStats
	for _, t := range db.Tasks {
		if !names[t.Assignee] {
			continue
		}
		s.TotalTasks++
		switch t.Status {
		case model.StatusDone:
			s.Done++
		case model.StatusInProgress:
			s.InProgress++
		}
	}
	return s
}

type MemberStats struct {
	TotalTasks int
	Done       int
	InProgress int
	Projects   []string // names of the team's associated projects
}

func MemberStatsFor(db *store.DB, team model.Team, member model.TeamMember) MemberStats {
	var s MemberStats
	for _, t := range db.Tasks {
		if t.Assignee != member.Name {
			continue
		}
		s.TotalTasks++
		switch t.Status {
		case model.StatusDone:
			s.Done++
		case model.StatusInProgress:
			s.InProgress++
		}
	}
	for _, pid := range team.ProjectIDs {
		if p, ok := db.FindProject(pid); ok {
			s.Projects = append(s.Projects, p.Name)
		}
	}
	return s
}
