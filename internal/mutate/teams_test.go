package mutate

import (
	"errors"
	"testing"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

func TestAddTeamGeneratesUniqueCodes(t *testing.T) {
	db := store.New()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		team, err := AddTeam(db, model.Team{Name: "T"})
		if err != nil {
			t.Fatalf("AddTeam error: %v", err)
		}
		if len(team.InviteCode) != 6 {
			t.Fatalf("expected 6-char code, got %q", team.InviteCode)
		}
		if seen[team.InviteCode] {
			t.Fatalf("duplicate invite code %q", team.InviteCode)
		}
		seen[team.InviteCode] = true
	}
}

func TestJoinTeamByCodeIsCaseInsensitive(t *testing.T) {
	db := store.New()
	db.Teams = []model.Team{{ID: 1, Name: "Frontend", InviteCode: "FE2025"}}

	team, err := JoinTeamByCode(db, "fe2025", testMember(9, "Lena Ortiz"))
	if err != nil {
		t.Fatalf("JoinTeamByCode error: %v", err)
	}
	if team.Name != "Frontend" {
		t.Fatalf("joined wrong team: %q", team.Name)
	}
	tm, _ := db.FindTeam(1)
	if len(tm.Members) != 1 || tm.Members[0].ID != 9 {
		t.Fatalf("member not appended: %+v", tm.Members)
	}
}

func TestJoinTeamByCodeRejectsUnknownCode(t *testing.T) {
	db := store.New()
	db.Teams = []model.Team{{ID: 1, InviteCode: "FE2025", Members: []model.TeamMember{}}}

	_, err := JoinTeamByCode(db, "NOPE99", testMember(9, "X"))
	if !errors.Is(err, ErrInvalidInviteCode) {
		t.Fatalf("expected ErrInvalidInviteCode, got %v", err)
	}
	tm, _ := db.FindTeam(1)
	if len(tm.Members) != 0 {
		t.Fatalf("miss must not change membership: %+v", tm.Members)
	}
}

func TestUpdateTeamNeverTouchesCodeOrMembers(t *testing.T) {
	db := store.New()
	db.Teams = []model.Team{{
		ID: 1, Name: "QA", InviteCode: "QA2025",
		Members: []model.TeamMember{testMember(1, "Ana Vries")},
	}}

	name := "Quality"
	got, err := UpdateTeam(db, 1, TeamPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateTeam error: %v", err)
	}
	if got.InviteCode != "QA2025" {
		t.Fatalf("invite code changed: %q", got.InviteCode)
	}
	if len(got.Members) != 1 {
		t.Fatalf("members changed: %+v", got.Members)
	}
}

func TestRemoveMember(t *testing.T) {
	db := store.New()
	db.Teams = []model.Team{{
		ID: 1,
		Members: []model.TeamMember{
			testMember(1, "Ana Vries"),
			testMember(2, "Tom Barrett"),
		},
	}}

	if err := RemoveMember(db, 1, 1); err != nil {
		t.Fatalf("RemoveMember error: %v", err)
	}
	tm, _ := db.FindTeam(1)
	if len(tm.Members) != 1 || tm.Members[0].ID != 2 {
		t.Fatalf("wrong members left: %+v", tm.Members)
	}

	// Removing an id that is absent is a no-op, not an error.
	if err := RemoveMember(db, 1, 99); err != nil {
		t.Fatalf("RemoveMember absent id error: %v", err)
	}
}

func TestDeleteTeamDoesNotCascade(t *testing.T) {
	db := store.New()
	db.Teams = []model.Team{{ID: 1, ProjectIDs: []int{1}}}
	db.Projects = []model.Project{{ID: 1, Name: "Site"}}
	db.Tasks = []model.Task{{ID: 1, ProjectID: 1}}

	if err := DeleteTeam(db, 1); err != nil {
		t.Fatalf("DeleteTeam error: %v", err)
	}
	if len(db.Projects) != 1 || len(db.Tasks) != 1 {
		t.Fatalf("team delete must not cascade: %d projects, %d tasks",
			len(db.Projects), len(db.Tasks))
	}
}
