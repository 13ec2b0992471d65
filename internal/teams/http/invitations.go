package http

import (
	"encoding/json"
	"net/http"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/pkg/httpx"
	"github.com/huddlehq/huddle/pkg/teamsdk"
)

// InvitationsHandler serves the team-scoped invitation endpoints.
type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleCreate godoc
//
//	@Summary		Invite by Email
//	@Description	Mint a single-use invitation token for an email address. The token appears in this response and is never readable again.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Team ID"
//	@Param			request	body		teamsdk.InviteRequest	true	"Email and role"
//	@Success		201		{object}	teamsdk.InvitationResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		403		{object}	teamsdk.ErrorResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req teamsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}

	inv, token, err := h.InvitationService.Invite(ctx, r.PathValue("id"), req.Email, domain.Role(req.Role), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv, token))
}

// HandleList godoc
//
//	@Summary		List Pending Invitations
//	@Description	List the team's pending invitations. Tokens are never included.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string	true	"Team ID"
//	@Success		200	{object}	teamsdk.ListInvitationsResponse
//	@Failure		403	{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	invitations, err := h.InvitationService.ListInvitations(ctx, r.PathValue("id"), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := teamsdk.ListInvitationsResponse{Invitations: make([]teamsdk.InvitationResponse, 0, len(invitations))}
	for _, inv := range invitations {
		resp.Invitations = append(resp.Invitations, toInvitationResponse(inv, ""))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleDelete godoc
//
//	@Summary		Revoke Invitation
//	@Description	Revoke a pending invitation before it is accepted. Owner or admin only.
//	@Tags			Invitations
//	@Param			id				path	string	true	"Team ID"
//	@Param			invitationID	path	string	true	"Invitation ID"
//	@Success		204
//	@Failure		403	{object}	teamsdk.ErrorResponse
//	@Failure		404	{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/invitations/{invitationID} [delete].
func (h *InvitationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.InvitationService.DeleteInvitation(ctx, r.PathValue("id"), r.PathValue("invitationID"), actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AcceptHandler serves the token-scoped invitation endpoints: the public
// verify and the authenticated accept.
type AcceptHandler struct {
	InvitationService *service.InvitationService
	TeamService       *service.TeamService
}

// HandleVerify godoc
//
//	@Summary		Verify Invitation Token
//	@Description	Resolve an invitation token to the offer behind it without consuming it. Missing and expired tokens are indistinguishable.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	teamsdk.VerifyInvitationResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Router			/v1/invitations/{token} [get].
func (h *AcceptHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	preview, err := h.InvitationService.VerifyToken(ctx, r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, teamsdk.VerifyInvitationResponse{
		TeamID:    preview.Invitation.TeamID,
		TeamName:  preview.TeamName,
		Email:     preview.Invitation.Email,
		Role:      string(preview.Invitation.Role),
		ExpiresAt: preview.Invitation.ExpiresAt,
	})
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Consume an invitation token, joining the caller to the team at the invited role. The token dies with this call.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	teamsdk.AcceptInvitationResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invitations/{token}/accept [post].
func (h *AcceptHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	teamID, err := h.InvitationService.AcceptInvitation(ctx, r.PathValue("token"), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := teamsdk.AcceptInvitationResponse{TeamID: teamID}
	if view, err := h.TeamService.GetTeam(ctx, teamID, actorID); err == nil {
		resp.Team = toTeamResponse(view)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
