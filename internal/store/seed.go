package store

import "taskdeck-cli/internal/model"

// Seed fills an empty DB with the demo dataset the app starts with. The data
// is internally consistent: every task references a seeded project and every
// assignee is a seeded member name. Events and the pending invitation are
// dated relative to the store clock so the calendar and the notification
// badge have content no matter when the app runs.
func (db *DB) Seed() {
	db.Projects = []model.Project{
		{
			ID:          1,
			Name:        "E-commerce Website",
			Description: "Full-featured storefront with checkout and payments",
			Status:      model.StatusNotStarted,
			Progress:    0,
			StartDate:   "2025-10-20",
			EndDate:     "2026-04-15",
			Team:        []string{"Ana Vries", "Tom Barrett"},
			Color:       "#3b82f6",
		},
		{
			ID:          2,
			Name:        "Mobile App",
			Description: "Cross-platform companion app",
			Status:      model.StatusInProgress,
			Progress:    45,
			StartDate:   "2025-08-15",
			EndDate:     "2025-10-10",
			Team:        []string{"Carol Lindt", "Dae-won Park"},
			Color:       "#10b981",
		},
		{
			ID:          3,
			Name:        "CRM System",
			Description: "Customer relationship management with reporting",
			Status:      model.StatusDone,
			Progress:    100,
			StartDate:   "2025-03-01",
			EndDate:     "2025-07-30",
			Team:        []string{"Eva Moreno", "Frank Olsen"},
			Color:       "#8b5cf6",
		},
	}

	db.Tasks = []model.Task{
		{
			ID:          1,
			Title:       "Integrate payment gateway",
			Description: "Wire up the hosted checkout flow",
			ProjectID:   1,
			Status:      model.StatusNotStarted,
			Priority:    model.PriorityHigh,
			Assignee:    "Ana Vries",
			DueDate:     "2026-04-15",
			Progress:    0,
			Comments:    3,
			Attachments: 2,
		},
		{
			ID:          2,
			Title:       "Design main screens",
			Description: "UI for the home and detail screens",
			ProjectID:   2,
			Status:      model.StatusInProgress,
			Priority:    model.PriorityMedium,
			Assignee:    "Tom Barrett",
			DueDate:     "2025-10-10",
			Progress:    60,
			Comments:    5,
			Attachments: 1,
		},
		{
			ID:          3,
			Title:       "Build sign-in flow",
			Description: "OAuth sign-in with session handling",
			ProjectID:   2,
			Status:      model.StatusInProgress,
			Priority:    model.PriorityHigh,
			Assignee:    "Carol Lindt",
			DueDate:     "2025-10-31",
			Progress:    75,
			Comments:    2,
			Attachments: 3,
		},
		{
			ID:          4,
			Title:       "Test and deploy",
			Description: "Full regression pass and production rollout",
			ProjectID:   3,
			Status:      model.StatusDone,
			Priority:    model.PriorityLow,
			Assignee:    "Dae-won Park",
			DueDate:     "2025-07-30",
			Progress:    100,
			Comments:    8,
			Attachments: 0,
		},
	}

	db.Teams = []model.Team{
		{
			ID:          1,
			Name:        "Frontend",
			Description: "User interface development",
			Color:       "#3b82f6",
			CreatedAt:   "2025-01-15",
			ProjectIDs:  []int{1, 2},
			InviteCode:  "FE2025",
			Members: []model.TeamMember{
				{
					ID: 1, Name: "Ana Vries", Role: "Frontend Developer",
					Email: "ana@example.com", Phone: "555-0101",
					Avatar: "AV", Status: model.PresenceOnline,
					Skills: []string{"React", "TypeScript", "CSS"},
				},
				{
					ID: 2, Name: "Tom Barrett", Role: "Full-stack Developer",
					Email: "tom@example.com", Phone: "555-0102",
					Avatar: "TB", Status: model.PresenceOnline,
					Skills: []string{"Node.js", "React", "PostgreSQL"},
				},
				{
					ID: 6, Name: "Hanna Fisk", Role: "UI/UX Designer",
					Email: "hanna@example.com", Phone: "555-0106",
					Avatar: "HF", Status: model.PresenceOnline,
					Skills: []string{"Figma", "User Research"},
				},
			},
		},
		{
			ID:          2,
			Name:        "Backend",
			Description: "Services and infrastructure",
			Color:       "#10b981",
			CreatedAt:   "2025-01-10",
			ProjectIDs:  []int{2, 3},
			InviteCode:  "BE2025",
			Members: []model.TeamMember{
				{
					ID: 3, Name: "Carol Lindt", Role: "Backend Developer",
					Email: "carol@example.com", Phone: "555-0103",
					Avatar: "CL", Status: model.PresenceAway,
					Skills: []string{"Go", "Docker"},
				},
				{
					ID: 4, Name: "Dae-won Park", Role: "DevOps Engineer",
					Email: "daewon@example.com", Phone: "555-0104",
					Avatar: "DP", Status: model.PresenceOnline,
					Skills: []string{"AWS", "Kubernetes", "CI/CD"},
				},
			},
		},
		{
			ID:          3,
			Name:        "QA",
			Description: "Quality assurance",
			Color:       "#8b5cf6",
			CreatedAt:   "2025-01-20",
			ProjectIDs:  []int{1, 2, 3},
			InviteCode:  "QA2025",
			Members: []model.TeamMember{
				{
					ID: 5, Name: "Eva Moreno", Role: "QA Engineer",
					Email: "eva@example.com", Phone: "555-0105",
					Avatar: "EM", Status: model.PresenceOffline,
					Skills: []string{"Selenium", "Test Planning"},
				},
			},
		},
	}

	now := db.Clock()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	db.Events = []model.CalendarEvent{
		{
			ID:        1,
			Title:     "Sprint review",
			StartDate: day(3),
			EndDate:   day(3),
			StartTime: "10:00",
			EndTime:   "11:00",
			Color:     "#f59e0b",
			Type:      model.EventTypeMeeting,
		},
		{
			ID:        2,
			Title:     "Release freeze",
			StartDate: day(10),
			EndDate:   day(12),
			Color:     "#ef4444",
			Type:      model.EventTypeDeadline,
		},
	}

	db.Invitations = []model.TeamInvitation{
		{
			ID:           1,
			TeamID:       3,
			TeamName:     "QA",
			TeamColor:    "#8b5cf6",
			InvitedEmail: "you@example.com",
			InvitedBy:    "Eva Moreno",
			CreatedAt:    now,
			Status:       model.InvitationPending,
		},
	}
}
