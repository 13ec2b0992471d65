package http

import (
	"errors"
	"net/http"

	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/pkg/httpx"
	"github.com/huddlehq/huddle/pkg/slogx"
	"github.com/huddlehq/huddle/pkg/teamsdk"
)

// errorCode pins a service error to a stable machine code, a fixed
// description and a status. The description never carries internal detail.
type errorCode struct {
	status      int
	code        string
	description string
}

var errorCodes = []struct {
	err  error
	code errorCode
}{
	{service.ErrTeamNotFound, errorCode{http.StatusNotFound, "not_found", "Team not found"}},
	{service.ErrMemberNotFound, errorCode{http.StatusNotFound, "not_found", "Member not found"}},
	{service.ErrInvitationNotFound, errorCode{http.StatusNotFound, "not_found", "Invitation not found or expired"}},
	{service.ErrForbidden, errorCode{http.StatusForbidden, "forbidden", "You do not have permission to perform this action"}},
	{service.ErrValidation, errorCode{http.StatusBadRequest, "invalid_request", "Invalid request"}},
	{service.ErrInvalidRole, errorCode{http.StatusBadRequest, "invalid_request", "Invalid role"}},
	{service.ErrUnknownTier, errorCode{http.StatusBadRequest, "invalid_request", "Unknown subscription tier"}},
	{service.ErrAlreadyInvited, errorCode{http.StatusBadRequest, "conflict", "Email already invited to this team"}},
	{service.ErrAlreadyMember, errorCode{http.StatusBadRequest, "conflict", "User is already a member of this team"}},
	{service.ErrLastOwnerProtected, errorCode{http.StatusBadRequest, "conflict", "Team must retain at least one owner"}},
	{service.ErrPersonalTeamProtected, errorCode{http.StatusBadRequest, "conflict", "Personal teams cannot be deleted"}},
	{service.ErrPersonalTeamImmutable, errorCode{http.StatusBadRequest, "conflict", "Personal team membership cannot change"}},
	{service.ErrPersonalTeamExists, errorCode{http.StatusBadRequest, "conflict", "User already has a personal team"}},
	{service.ErrTeamFull, errorCode{http.StatusBadRequest, "conflict", "Team is at its member limit"}},
	{service.ErrUnavailable, errorCode{http.StatusServiceUnavailable, "unavailable", "Service temporarily unavailable"}},
}

// writeServiceError translates a service error into the wire envelope.
// Unknown errors are logged and surfaced as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, entry := range errorCodes {
		if errors.Is(err, entry.err) {
			if entry.code.status >= http.StatusInternalServerError {
				slogx.FromContext(r.Context()).Error("request failed", "err", err)
			}
			httpx.WriteJSON(w, entry.code.status, teamsdk.ErrorResponse{
				Error:            entry.code.code,
				ErrorDescription: entry.code.description,
			})
			return
		}
	}

	slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
	httpx.WriteJSON(w, http.StatusInternalServerError, teamsdk.ErrorResponse{
		Error:            "server_error",
		ErrorDescription: "Internal server error",
	})
}

// writeBadRequest reports a malformed request before it reaches a service.
func writeBadRequest(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusBadRequest, teamsdk.ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: description,
	})
}

// writeUnauthorized reports a missing or unusable identity.
func writeUnauthorized(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, teamsdk.ErrorResponse{
		Error:            "unauthorized",
		ErrorDescription: "Authentication required",
	})
}
