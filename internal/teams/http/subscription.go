package http

import (
	"encoding/json"
	"net/http"

	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/pkg/httpx"
	"github.com/huddlehq/huddle/pkg/teamsdk"
)

// SubscriptionHandler serves the team subscription endpoint.
type SubscriptionHandler struct {
	SubscriptionService *service.SubscriptionService
	TeamService         *service.TeamService
}

// HandleChange godoc
//
//	@Summary		Change Subscription Tier
//	@Description	Move the team to a different subscription tier. Owner only. A downgrade below the current roster size is refused.
//	@Tags			Subscription
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Team ID"
//	@Param			request	body		teamsdk.ChangeSubscriptionRequest	true	"Target tier"
//	@Success		200		{object}	teamsdk.TeamResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		403		{object}	teamsdk.ErrorResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/teams/{id}/subscription [put].
func (h *SubscriptionHandler) HandleChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := httpx.ActorID(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req teamsdk.ChangeSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Tier == "" {
		writeBadRequest(w, "tier is required")
		return
	}

	team, err := h.SubscriptionService.ChangeSubscription(ctx, r.PathValue("id"), req.Tier, req.SubscriptionRef, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view, err := h.TeamService.GetTeam(ctx, team.ID, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTeamResponse(view))
}

// TiersHandler serves the public tier catalogue.
type TiersHandler struct {
	SubscriptionService *service.SubscriptionService
}

// ServeHTTP godoc
//
//	@Summary		List Subscription Tiers
//	@Description	List the available subscription tiers with their member ceilings and features. Public reference data.
//	@Tags			Subscription
//	@Produce		json
//	@Success		200	{object}	teamsdk.ListTiersResponse
//	@Router			/v1/tiers [get].
func (h *TiersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tiers := h.SubscriptionService.ListTiers(r.Context())

	resp := teamsdk.ListTiersResponse{Tiers: make([]teamsdk.TierResponse, 0, len(tiers))}
	for _, info := range tiers {
		resp.Tiers = append(resp.Tiers, toTierResponse(info))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
