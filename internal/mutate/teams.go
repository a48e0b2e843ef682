package mutate

import (
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

type TeamPatch struct {
	Name        *string
	Description *string
	Color       *string
	ProjectIDs  *[]int
}

// AddTeam assigns the next id and a fresh invite code. The caller does not
// control the code; it is generated uppercase and unique among teams.
func AddTeam(db *store.DB, t model.Team) (model.Team, error) {
	code, err := db.NewInviteCode()
	if err != nil {
		return model.Team{}, err
	}
	t.ID = db.NextTeamID()
	t.InviteCode = code
	if t.Members == nil {
		t.Members = []model.TeamMember{}
	}
	db.Teams = append(db.Teams, t)
	db.Changed()
	return t, nil
}

// UpdateTeam never touches the invite code or members; those have their own
// operations. Invitations keep the name/color snapshot they were created
// with (renames are not retroactive).
func UpdateTeam(db *store.DB, id int, patch TeamPatch) (model.Team, error) {
	t, ok := db.FindTeam(id)
	if !ok {
		return model.Team{}, errNotFound("team", id)
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Color != nil {
		t.Color = *patch.Color
	}
	if patch.ProjectIDs != nil {
		t.ProjectIDs = *patch.ProjectIDs
	}
	db.Changed()
	return *t, nil
}

// DeleteTeam removes only the team. Tasks and events are unrelated to teams,
// so there is no cascade here.
func DeleteTeam(db *store.DB, id int) error {
	if _, ok := db.FindTeam(id); !ok {
		return errNotFound("team", id)
	}
	kept := db.Teams[:0]
	for _, t := range db.Teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	db.Teams = kept
	db.Changed()
	return nil
}

// AddMember appends a fully-formed member (caller supplies id, avatar, etc.).
func AddMember(db *store.DB, teamID int, member model.TeamMember) error {
	t, ok := db.FindTeam(teamID)
	if !ok {
		return errNotFound("team", teamID)
	}
	t.Members = append(t.Members, member)
	db.Changed()
	return nil
}

func RemoveMember(db *store.DB, teamID, memberID int) error {
	t, ok := db.FindTeam(teamID)
	if !ok {
		return errNotFound("team", teamID)
	}
	kept := t.Members[:0]
	for _, m := range t.Members {
		if m.ID != memberID {
			kept = append(kept, m)
		}
	}
	t.Members = kept
	db.Changed()
	return nil
}

// JoinTeamByCode appends member to the team whose stored code matches the
// (case-insensitively uppercased) input. On a miss nothing changes.
func JoinTeamByCode(db *store.DB, code string, member model.TeamMember) (model.Team, error) {
	t, ok := db.FindTeamByCode(code)
	if !ok {
		return model.Team{}, ErrInvalidInviteCode
	}
	t.Members = append(t.Members, member)
	db.Changed()
	return *t, nil
}
