package domain

import "time"

// Invitation is a time-boxed, single-use offer of a role in a team to an
// email address. Only the SHA-256 fingerprint of the opaque token is stored.
//
// Acceptance is destructive: the row is deleted and the created membership is
// the only trace. An expired invitation is indistinguishable from a missing
// one to callers; the row lingers until housekeeping reaps it.
type Invitation struct {
	ID        string
	TeamID    string
	Email     string
	Role      Role
	TokenHash string
	CreatedBy string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Live reports whether the invitation can still be verified or accepted at
// the given instant. An invitation expiring exactly now is already dead.
func (i Invitation) Live(now time.Time) bool {
	return now.Before(i.ExpiresAt)
}
