package http

import (
	"encoding/json"
	"net/http"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/pkg/httpx"
	"github.com/huddlehq/huddle/pkg/teamsdk"
)

// TeamsHandler serves the team CRUD endpoints.
type TeamsHandler struct {
	TeamService *service.TeamService
}

// HandleCreate godoc
//
//	@Summary		Create Team
//	@Description	Create a team owned by the caller. The team starts on the free tier with the caller as its only member.
//	@Tags			Teams
//	@Accept			json
//	@Produce		json
//	@Param			request	body		teamsdk.CreateTeamRequest	true	"Team details"
//	@Success		201		{object}	teamsdk.TeamResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		401		{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams [post].
func (h *TeamsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req teamsdk.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	view, err := h.TeamService.CreateTeam(ctx, actorID, service.CreateTeamParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTeamResponse(view))
}

// HandleList godoc
//
//	@Summary		List My Teams
//	@Description	List every team the caller belongs to, personal team included.
//	@Tags			Teams
//	@Produce		json
//	@Success		200	{object}	teamsdk.ListTeamsResponse
//	@Failure		401	{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams [get].
func (h *TeamsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	views, err := h.TeamService.ListTeams(ctx, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := teamsdk.ListTeamsResponse{Teams: make([]teamsdk.TeamResponse, 0, len(views))}
	for _, view := range views {
		resp.Teams = append(resp.Teams, toTeamResponse(view))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get Team
//	@Description	Fetch a single team. Callers must be a member of the team.
//	@Tags			Teams
//	@Produce		json
//	@Param			id	path		string	true	"Team ID"
//	@Success		200	{object}	teamsdk.TeamResponse
//	@Failure		403	{object}	teamsdk.ErrorResponse
//	@Failure		404	{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id} [get].
func (h *TeamsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	view, err := h.TeamService.GetTeam(ctx, r.PathValue("id"), actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTeamResponse(view))
}

// HandleUpdate godoc
//
//	@Summary		Update Team
//	@Description	Patch team name, description or logo. Absent fields are left untouched. Owner or admin only.
//	@Tags			Teams
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Team ID"
//	@Param			request	body		teamsdk.UpdateTeamRequest	true	"Fields to update"
//	@Success		200		{object}	teamsdk.TeamResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		403		{object}	teamsdk.ErrorResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id} [patch].
func (h *TeamsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req teamsdk.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	view, err := h.TeamService.UpdateTeam(ctx, r.PathValue("id"), actorID, domain.TeamPatch{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTeamResponse(view))
}

// HandleDelete godoc
//
//	@Summary		Delete Team
//	@Description	Delete a team and everything attached to it. Owner only; personal teams can never be deleted.
//	@Tags			Teams
//	@Param			id	path	string	true	"Team ID"
//	@Success		204
//	@Failure		400	{object}	teamsdk.ErrorResponse
//	@Failure		403	{object}	teamsdk.ErrorResponse
//	@Failure		404	{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id} [delete].
func (h *TeamsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.TeamService.DeleteTeam(ctx, r.PathValue("id"), actorID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
