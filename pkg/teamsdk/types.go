// Package teamsdk holds the wire types of the team service HTTP API. They are
// shared between the server handlers and any Go clients of the service.
package teamsdk

import "time"

// ErrorResponse is the uniform error envelope. Error is a stable machine
// code; ErrorDescription is a fixed human-readable message. Internal error
// text is never exposed here.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// TeamResponse is the external view of a team.
type TeamResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description,omitempty"`
	LogoURL          string            `json:"logo_url,omitempty"`
	IsPersonal       bool              `json:"is_personal"`
	SubscriptionTier string            `json:"subscription_tier"`
	MaxMembers       int               `json:"max_members"` // 0 = unbounded
	Metadata         map[string]string `json:"metadata,omitempty"`
	OwnerID          string            `json:"owner_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// UpdateTeamRequest is a patch; nil fields are left untouched.
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// MemberResponse is the external view of a membership row.
type MemberResponse struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type InviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InvitationResponse is the external view of a pending invitation. Token is
// only populated in the response to the mint call; it is never readable
// again afterwards.
type InvitationResponse struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	CreatedBy string    `json:"created_by"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type ListInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// VerifyInvitationResponse is what an invitee sees before accepting. It
// includes the team name for display purposes.
type VerifyInvitationResponse struct {
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AcceptInvitationResponse struct {
	TeamID string       `json:"team_id"`
	Team   TeamResponse `json:"team"`
}

type ChangeSubscriptionRequest struct {
	Tier            string `json:"tier"`
	SubscriptionRef string `json:"subscription_ref,omitempty"`
}

// TierResponse describes a subscription tier; Features is static reference
// data returned verbatim.
type TierResponse struct {
	Tier       string   `json:"tier"`
	Name       string   `json:"name"`
	MaxMembers int      `json:"max_members"` // 0 = unbounded
	Features   []string `json:"features"`
}

type ListTiersResponse struct {
	Tiers []TierResponse `json:"tiers"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
