package domain

import "time"

type Team struct {
	ID          string
	Name        string
	Slug        string // unique across all teams
	Description string
	LogoURL     string

	// Personal teams are auto-scoped to exactly one user. They can never be
	// deleted and never gain a second member.
	IsPersonal      bool
	PersonalOwnerID string // set iff IsPersonal

	SubscriptionTier Tier
	SubscriptionRef  string // opaque billing reference, e.g. a provider ID
	MaxMembers       int    // denormalized from SubscriptionTier; 0 = unbounded

	Metadata  map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamPatch carries the mutable team fields for UpdateTeam. Nil fields are
// left untouched.
type TeamPatch struct {
	Name        *string
	Description *string
	LogoURL     *string
}
