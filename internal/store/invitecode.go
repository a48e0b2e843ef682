package store

import (
	"crypto/rand"
	"math/big"
)

// Invite codes are 6 chars from A-Z0-9 (~31 bits of space). That is small,
// so generation retries until the code is unused by any current team; the
// count of teams in a single-user session keeps collisions negligible.
const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const inviteCodeLen = 6

func randomInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLen)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func (db *DB) inviteCodeTaken(code string) bool {
	for _, t := range db.Teams {
		if t.InviteCode == code {
			return true
		}
	}
	return false
}

// NewInviteCode returns a fresh uppercase code unique among current teams.
func (db *DB) NewInviteCode() (string, error) {
	for i := 0; i < 100; i++ {
		code, err := randomInviteCode()
		if err != nil {
			return "", err
		}
		if !db.inviteCodeTaken(code) {
			return code, nil
		}
	}
	// 100 collisions in a row means the RNG is broken, not the space full.
	code, err := randomInviteCode()
	if err != nil {
		return "", err
	}
	return code, nil
}
