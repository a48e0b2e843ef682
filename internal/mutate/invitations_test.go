package mutate

import (
	"errors"
	"testing"
	"time"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

func testMember(id int, name string) model.TeamMember {
	return model.TeamMember{ID: id, Name: name, Avatar: store.MemberInitials(name)}
}

func TestSendInvitationSnapshotsTeam(t *testing.T) {
	db := store.New()
	pinned := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	db.Now = func() time.Time { return pinned }

	team, err := AddTeam(db, model.Team{Name: "Frontend", Color: "#3b82f6"})
	if err != nil {
		t.Fatalf("AddTeam error: %v", err)
	}

	inv, err := SendInvitation(db, team.ID, "lena@example.com", "Ana Vries")
	if err != nil {
		t.Fatalf("SendInvitation error: %v", err)
	}
	if inv.Status != model.InvitationPending {
		t.Fatalf("expected pending, got %s", inv.Status)
	}
	if inv.TeamName != "Frontend" || inv.TeamColor != "#3b82f6" {
		t.Fatalf("snapshot missing: %+v", inv)
	}
	if !inv.CreatedAt.Equal(pinned) {
		t.Fatalf("expected pinned CreatedAt, got %v", inv.CreatedAt)
	}

	// A later rename does not touch the snapshot.
	name := "Web"
	if _, err := UpdateTeam(db, team.ID, TeamPatch{Name: &name}); err != nil {
		t.Fatalf("UpdateTeam error: %v", err)
	}
	got, _ := db.FindInvitation(inv.ID)
	if got.TeamName != "Frontend" {
		t.Fatalf("snapshot altered by rename: %q", got.TeamName)
	}
}

func TestAcceptInvitationAddsMemberAndResolves(t *testing.T) {
	db := store.New()
	team, _ := AddTeam(db, model.Team{Name: "QA"})
	inv, _ := SendInvitation(db, team.ID, "lena@example.com", "Ana")

	got, err := AcceptInvitation(db, inv.ID, testMember(100, "Lena Ortiz"))
	if err != nil {
		t.Fatalf("AcceptInvitation error: %v", err)
	}
	if got.Status != model.InvitationAccepted {
		t.Fatalf("expected accepted, got %s", got.Status)
	}
	tm, _ := db.FindTeam(team.ID)
	if len(tm.Members) != 1 || tm.Members[0].Name != "Lena Ortiz" {
		t.Fatalf("member not appended: %+v", tm.Members)
	}
}

func TestAcceptInvitationIsTerminal(t *testing.T) {
	db := store.New()
	team, _ := AddTeam(db, model.Team{Name: "QA"})
	inv, _ := SendInvitation(db, team.ID, "a@b.co", "Ana")

	if _, err := AcceptInvitation(db, inv.ID, testMember(1, "A B")); err != nil {
		t.Fatalf("first accept error: %v", err)
	}
	if _, err := AcceptInvitation(db, inv.ID, testMember(2, "C D")); !errors.Is(err, ErrInvitationResolved) {
		t.Fatalf("expected ErrInvitationResolved, got %v", err)
	}
	if _, err := RejectInvitation(db, inv.ID); !errors.Is(err, ErrInvitationResolved) {
		t.Fatalf("expected ErrInvitationResolved on reject, got %v", err)
	}

	// Membership was added exactly once.
	tm, _ := db.FindTeam(team.ID)
	if len(tm.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(tm.Members))
	}
}

func TestRejectLeavesMembershipUnchanged(t *testing.T) {
	db := store.New()
	team, _ := AddTeam(db, model.Team{Name: "QA"})
	inv, _ := SendInvitation(db, team.ID, "a@b.co", "Ana")

	got, err := RejectInvitation(db, inv.ID)
	if err != nil {
		t.Fatalf("RejectInvitation error: %v", err)
	}
	if got.Status != model.InvitationRejected {
		t.Fatalf("expected rejected, got %s", got.Status)
	}
	tm, _ := db.FindTeam(team.ID)
	if len(tm.Members) != 0 {
		t.Fatalf("reject must not change membership: %+v", tm.Members)
	}
}

func TestAcceptAfterTeamDeleted(t *testing.T) {
	db := store.New()
	team, _ := AddTeam(db, model.Team{Name: "QA"})
	inv, _ := SendInvitation(db, team.ID, "a@b.co", "Ana")

	if err := DeleteTeam(db, team.ID); err != nil {
		t.Fatalf("DeleteTeam error: %v", err)
	}
	_, err := AcceptInvitation(db, inv.ID, testMember(1, "A B"))
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "team" {
		t.Fatalf("expected team NotFoundError, got %v", err)
	}
	// The invitation stays pending: the failure left no partial state.
	got, _ := db.FindInvitation(inv.ID)
	if got.Status != model.InvitationPending {
		t.Fatalf("expected still pending, got %s", got.Status)
	}
}

func TestDuplicatePendingInvitationsAllowed(t *testing.T) {
	db := store.New()
	team, _ := AddTeam(db, model.Team{Name: "QA"})

	first, _ := SendInvitation(db, team.ID, "a@b.co", "Ana")
	second, err := SendInvitation(db, team.ID, "a@b.co", "Ana")
	if err != nil {
		t.Fatalf("second SendInvitation error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %d", first.ID)
	}
	if len(db.Invitations) != 2 {
		t.Fatalf("expected 2 invitations, got %d", len(db.Invitations))
	}
}
