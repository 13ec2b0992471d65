package domain

import "time"

// Membership is the (team, user, role) tuple granting access. A user holds
// at most one role per team, enforced by a unique (team_id, user_id) index.
type Membership struct {
	ID        string
	TeamID    string
	UserID    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
