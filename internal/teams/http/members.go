package http

import (
	"encoding/json"
	"net/http"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/pkg/httpx"
	"github.com/huddlehq/huddle/pkg/teamsdk"
)

// MembersHandler serves the roster endpoints under a team.
type MembersHandler struct {
	TeamService *service.TeamService
}

// HandleList godoc
//
//	@Summary		List Members
//	@Description	List the team roster in join order. Any member may read it.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string	true	"Team ID"
//	@Success		200	{object}	teamsdk.ListMembersResponse
//	@Failure		403	{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	members, err := h.TeamService.ListMembers(ctx, r.PathValue("id"), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := teamsdk.ListMembersResponse{Members: make([]teamsdk.MemberResponse, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleAdd godoc
//
//	@Summary		Add Member
//	@Description	Attach a known user to the team directly, without an invitation. The same role rules as inviting apply.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Team ID"
//	@Param			request	body		teamsdk.AddMemberRequest	true	"User and role"
//	@Success		201		{object}	teamsdk.MemberResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		403		{object}	teamsdk.ErrorResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/members [post].
func (h *MembersHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req teamsdk.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.UserID == "" {
		writeBadRequest(w, "user_id is required")
		return
	}

	m, err := h.TeamService.AddMember(ctx, r.PathValue("id"), req.UserID, domain.Role(req.Role), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMemberResponse(m))
}

// HandleChangeRole godoc
//
//	@Summary		Change Member Role
//	@Description	Move a member to a new role. Owners may set any role; admins may only demote non-owners to member. The last owner can never be demoted.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Team ID"
//	@Param			userID	path		string						true	"User ID"
//	@Param			request	body		teamsdk.ChangeRoleRequest	true	"New role"
//	@Success		200		{object}	teamsdk.MemberResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		403		{object}	teamsdk.ErrorResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/members/{userID} [patch].
func (h *MembersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req teamsdk.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	m, err := h.TeamService.ChangeMemberRole(ctx, r.PathValue("id"), r.PathValue("userID"), domain.Role(req.Role), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(m))
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Remove a member from the team, or leave it when the target is the caller. The last owner can never be removed.
//	@Tags			Members
//	@Param			id		path	string	true	"Team ID"
//	@Param			userID	path	string	true	"User ID"
//	@Success		204
//	@Failure		400	{object}	teamsdk.ErrorResponse
//	@Failure		403	{object}	teamsdk.ErrorResponse
//	@Failure		404	{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/members/{userID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.TeamService.RemoveMember(ctx, r.PathValue("id"), r.PathValue("userID"), actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
