package http

import (
	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/pkg/teamsdk"
)

func toTeamResponse(view service.TeamView) teamsdk.TeamResponse {
	t := view.Team
	return teamsdk.TeamResponse{
		ID:               t.ID,
		Name:             t.Name,
		Slug:             t.Slug,
		Description:      t.Description,
		LogoURL:          t.LogoURL,
		IsPersonal:       t.IsPersonal,
		SubscriptionTier: string(t.SubscriptionTier),
		MaxMembers:       t.MaxMembers,
		Metadata:         t.Metadata,
		OwnerID:          view.OwnerID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toMemberResponse(m domain.Membership) teamsdk.MemberResponse {
	return teamsdk.MemberResponse{
		ID:        m.ID,
		TeamID:    m.TeamID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// toInvitationResponse renders an invitation. The opaque token is attached
// only at mint time; every other path passes an empty string.
func toInvitationResponse(inv domain.Invitation, token string) teamsdk.InvitationResponse {
	return teamsdk.InvitationResponse{
		ID:        inv.ID,
		TeamID:    inv.TeamID,
		Email:     inv.Email,
		Role:      string(inv.Role),
		Token:     token,
		CreatedBy: inv.CreatedBy,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

func toTierResponse(info domain.TierInfo) teamsdk.TierResponse {
	return teamsdk.TierResponse{
		Tier:       string(info.Tier),
		Name:       info.Name,
		MaxMembers: info.MaxMembers,
		Features:   info.Features,
	}
}
