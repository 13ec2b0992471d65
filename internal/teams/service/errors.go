package service

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. The request surface maps these 1:1 onto status
// codes; anything not listed here is treated as ErrUnavailable.
var (
	// ErrValidation covers malformed input, caught before any store access.
	ErrValidation = errors.New("invalid request")

	// ErrForbidden is the uniform authorization denial. Existence checks run
	// first, so a Forbidden never leaks whether a team exists.
	ErrForbidden = errors.New("forbidden")

	ErrTeamNotFound   = errors.New("team not found")
	ErrMemberNotFound = errors.New("member not found")

	// ErrInvitationNotFound covers both missing and expired invitations;
	// callers cannot tell the two apart.
	ErrInvitationNotFound = errors.New("invitation not found or expired")

	ErrInvalidRole = errors.New("invalid role")
	ErrUnknownTier = errors.New("unknown subscription tier")

	// Conflict variants.
	ErrAlreadyInvited        = errors.New("email already invited to this team")
	ErrAlreadyMember         = errors.New("user is already a member of this team")
	ErrLastOwnerProtected    = errors.New("team must retain at least one owner")
	ErrPersonalTeamProtected = errors.New("cannot delete personal team")
	ErrPersonalTeamImmutable = errors.New("personal team membership cannot change")
	ErrPersonalTeamExists    = errors.New("user already has a personal team")
	ErrTeamFull              = errors.New("team is at its member limit")

	// ErrUnavailable is the catch-all for store or transport failures. It is
	// never retried here; surfacing it is the caller's problem.
	ErrUnavailable = errors.New("service unavailable")
)

// unavailable wraps an untranslated store error so errors.Is(err,
// ErrUnavailable) holds while the cause stays visible in logs.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
