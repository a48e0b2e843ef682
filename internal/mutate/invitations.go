package mutate

import (
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// The invitation lifecycle is pending -> accepted | rejected, both terminal.

// SendInvitation snapshots the team's current name and color into the
// record. Repeated invitations to the same (team, email) pair are allowed;
// the feed shows each one.
func SendInvitation(db *store.DB, teamID int, email, invitedBy string) (model.TeamInvitation, error) {
	t, ok := db.FindTeam(teamID)
	if !ok {
		return model.TeamInvitation{}, errNotFound("team", teamID)
	}
	inv := model.TeamInvitation{
		ID:           db.NextInvitationID(),
		TeamID:       t.ID,
		TeamName:     t.Name,
		TeamColor:    t.Color,
		InvitedEmail: email,
		InvitedBy:    invitedBy,
		CreatedAt:    db.Clock(),
		Status:       model.InvitationPending,
	}
	db.Invitations = append(db.Invitations, inv)
	db.Changed()
	return inv, nil
}

// AcceptInvitation flips the status AND appends the member to the target
// team. Both effects apply before any listener runs, so no reader can see
// one without the other.
func AcceptInvitation(db *store.DB, invitationID int, member model.TeamMember) (model.TeamInvitation, error) {
	inv, ok := db.FindInvitation(invitationID)
	if !ok {
		return model.TeamInvitation{}, errNotFound("invitation", invitationID)
	}
	if inv.Status != model.InvitationPending {
		return model.TeamInvitation{}, ErrInvitationResolved
	}
	t, ok := db.FindTeam(inv.TeamID)
	if !ok {
		// Team deleted after the invite went out. The invitation stays
		// pending; accepting it is impossible, not a silent no-op.
		return model.TeamInvitation{}, errNotFound("team", inv.TeamID)
	}

	t.Members = append(t.Members, member)
	inv.Status = model.InvitationAccepted
	db.Changed()
	return *inv, nil
}

// RejectInvitation flips the status; team membership is untouched.
func RejectInvitation(db *store.DB, invitationID int) (model.TeamInvitation, error) {
	inv, ok := db.FindInvitation(invitationID)
	if !ok {
		return model.TeamInvitation{}, errNotFound("invitation", invitationID)
	}
	if inv.Status != model.InvitationPending {
		return model.TeamInvitation{}, ErrInvitationResolved
	}
	inv.Status = model.InvitationRejected
	db.Changed()
	return *inv, nil
}
