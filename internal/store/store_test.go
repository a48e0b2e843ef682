package store

import (
	"strings"
	"testing"
	"time"

	"taskdeck-cli/internal/model"
)

func TestNextIDsStartAtOne(t *testing.T) {
	db := New()
	if got := db.NextProjectID(); got != 1 {
		t.Fatalf("NextProjectID on empty store = %d, want 1", got)
	}
	if got := db.NextInvitationID(); got != 1 {
		t.Fatalf("NextInvitationID on empty store = %d, want 1", got)
	}
}

func TestNextIDIgnoresGaps(t *testing.T) {
	db := New()
	db.Projects = []model.Project{{ID: 2}, {ID: 9}, {ID: 4}}
	if got := db.NextProjectID(); got != 10 {
		t.Fatalf("NextProjectID = %d, want 10", got)
	}
}

func TestNextMemberIDIsTimeBased(t *testing.T) {
	db := New()
	pinned := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	db.Now = func() time.Time { return pinned }
	if got := db.NextMemberID(); got != int(pinned.UnixMilli()) {
		t.Fatalf("NextMemberID = %d, want %d", got, pinned.UnixMilli())
	}
}

func TestTodayUsesPinnedClock(t *testing.T) {
	db := New()
	db.Now = func() time.Time {
		return time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)
	}
	if got := db.Today(); got != "2026-03-07" {
		t.Fatalf("Today = %q, want 2026-03-07", got)
	}
}

func TestFindTeamByCodeUppercasesInput(t *testing.T) {
	db := New()
	db.Teams = []model.Team{{ID: 1, InviteCode: "FE2025"}}

	if _, ok := db.FindTeamByCode("fe2025"); !ok {
		t.Fatalf("lowercase input should match uppercase code")
	}
	if _, ok := db.FindTeamByCode(" fe2025 "); !ok {
		t.Fatalf("padded input should match")
	}
	if _, ok := db.FindTeamByCode("XX0000"); ok {
		t.Fatalf("unknown code should not match")
	}
}

func TestMemberInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ana Vries", "AV"},
		{"tom", "T"},
		{"Mary Jane van Dyke", "MJV"}, // caps at three
		{"", ""},
		{"  spaced   out  ", "SO"},
	}
	for _, c := range cases {
		if got := MemberInitials(c.name); got != c.want {
			t.Fatalf("MemberInitials(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestNewInviteCodeFormat(t *testing.T) {
	db := New()
	code, err := db.NewInviteCode()
	if err != nil {
		t.Fatalf("NewInviteCode error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("code length = %d, want 6", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(inviteCodeAlphabet, r) {
			t.Fatalf("code %q contains %q outside alphabet", code, r)
		}
	}
}

func TestSubscribeRunsOnChanged(t *testing.T) {
	db := New()
	calls := 0
	db.Subscribe(func() { calls++ })
	db.Subscribe(func() { calls += 10 })

	db.Changed()
	if calls != 11 {
		t.Fatalf("expected both listeners to run once, calls = %d", calls)
	}
}

func TestSeedIntegrity(t *testing.T) {
	db := New()
	db.Seed()

	if len(db.Projects) == 0 || len(db.Tasks) == 0 || len(db.Teams) == 0 {
		t.Fatalf("seed incomplete: %d projects, %d tasks, %d teams",
			len(db.Projects), len(db.Tasks), len(db.Teams))
	}

	// Every task points at a seeded project.
	for _, task := range db.Tasks {
		if _, ok := db.FindProject(task.ProjectID); !ok {
			t.Fatalf("task %d references missing project %d", task.ID, task.ProjectID)
		}
	}

	// Invite codes are uppercase and unique.
	seen := map[string]bool{}
	for _, team := range db.Teams {
		if team.InviteCode != strings.ToUpper(team.InviteCode) {
			t.Fatalf("invite code %q not uppercase", team.InviteCode)
		}
		if seen[team.InviteCode] {
			t.Fatalf("duplicate seeded invite code %q", team.InviteCode)
		}
		seen[team.InviteCode] = true
	}
}
