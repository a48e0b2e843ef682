package mutate

import (
	"errors"
	"fmt"
)

// NotFoundError reports a mutation against an id that is not in the store.
// Misses are explicit errors, never silent no-ops, so callers (and tests)
// can tell a miss from a success.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Kind, e.ID)
}

func errNotFound(kind string, id int) error {
	return NotFoundError{Kind: kind, ID: id}
}

var (
	// ErrInvitationResolved is returned for transitions out of a terminal
	// invitation state (accepted/rejected are terminal).
	ErrInvitationResolved = errors.New("invitation already resolved")

	// ErrInvalidInviteCode is returned when no team's invite code matches.
	ErrInvalidInviteCode = errors.New("invalid invite code")
)
