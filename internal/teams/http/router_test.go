package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/internal/teams/store/drivers/sqlite"
	"github.com/huddlehq/huddle/pkg/jwtx"
	"github.com/huddlehq/huddle/pkg/slogx"
	"github.com/huddlehq/huddle/pkg/teamsdk"
)

var testSecret = []byte("test-secret-test-secret-test-secret")

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{Service: "team-service-test", Format: "text", Level: "error"})

	r := NewRouter(jwtx.NewHMACVerifier(testSecret, ""), "test", st, logger)
	r.TeamService = &service.TeamService{Store: st}
	r.InvitationService = &service.InvitationService{Store: st}
	r.SubscriptionService = &service.SubscriptionService{Store: st}
	r.ApplyRoutes()
	return r
}

func bearerFor(t *testing.T, userID string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *Router, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("Authorization", bearerFor(t, userID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestTeamEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/teams", "user-alice", teamsdk.CreateTeamRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code)
	team := decode[teamsdk.TeamResponse](t, rec)
	require.Equal(t, "Acme", team.Name)
	require.Equal(t, "user-alice", team.OwnerID)
	require.Equal(t, "free", team.SubscriptionTier)

	t.Run("missing token is unauthorized", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/teams/"+team.ID, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/teams/"+team.ID, "user-mallory", nil)
		require.Equal(t, http.StatusForbidden, rec.Code)

		errResp := decode[teamsdk.ErrorResponse](t, rec)
		require.Equal(t, "forbidden", errResp.Error)
	})

	t.Run("owner reads and patches", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/teams/"+team.ID, "user-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		desc := "patched description"
		rec = doJSON(t, r, http.MethodPatch, "/v1/teams/"+team.ID, "user-alice",
			teamsdk.UpdateTeamRequest{Description: &desc})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, desc, decode[teamsdk.TeamResponse](t, rec).Description)
	})

	t.Run("list shows the team", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/teams", "user-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[teamsdk.ListTeamsResponse](t, rec).Teams, 1)
	})

	t.Run("unknown team is 404", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/teams/01XXXXXXXXXXXXXXXXXXXXXXXX", "user-alice", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInvitationFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	team := decode[teamsdk.TeamResponse](t,
		doJSON(t, r, http.MethodPost, "/v1/teams", "user-alice", teamsdk.CreateTeamRequest{Name: "Acme"}))

	rec := doJSON(t, r, http.MethodPost, "/v1/teams/"+team.ID+"/invitations", "user-alice",
		teamsdk.InviteRequest{Email: "bob@example.com", Role: "member"})
	require.Equal(t, http.StatusCreated, rec.Code)
	inv := decode[teamsdk.InvitationResponse](t, rec)
	require.NotEmpty(t, inv.Token)

	t.Run("verify is public", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/invitations/"+inv.Token, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		verify := decode[teamsdk.VerifyInvitationResponse](t, rec)
		require.Equal(t, "Acme", verify.TeamName)
		require.Equal(t, "member", verify.Role)
	})

	t.Run("token never listed back", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/teams/"+team.ID+"/invitations", "user-alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[teamsdk.ListInvitationsResponse](t, rec)
		require.Len(t, list.Invitations, 1)
		require.Empty(t, list.Invitations[0].Token)
	})

	t.Run("accept joins the caller", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/v1/invitations/"+inv.Token+"/accept", "user-bob", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		accepted := decode[teamsdk.AcceptInvitationResponse](t, rec)
		require.Equal(t, team.ID, accepted.TeamID)
		require.Equal(t, "Acme", accepted.Team.Name)

		rec = doJSON(t, r, http.MethodGet, "/v1/teams/"+team.ID+"/members", "user-bob", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[teamsdk.ListMembersResponse](t, rec).Members, 2)
	})

	t.Run("second accept is 404", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/v1/invitations/"+inv.Token+"/accept", "user-carol", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMembershipConflictsOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	team := decode[teamsdk.TeamResponse](t,
		doJSON(t, r, http.MethodPost, "/v1/teams", "user-alice", teamsdk.CreateTeamRequest{Name: "Acme"}))

	rec := doJSON(t, r, http.MethodPost, "/v1/teams/"+team.ID+"/members", "user-alice",
		teamsdk.AddMemberRequest{UserID: "user-bob", Role: "member"})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate add is a 400 conflict", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/v1/teams/"+team.ID+"/members", "user-alice",
			teamsdk.AddMemberRequest{UserID: "user-bob", Role: "member"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "conflict", decode[teamsdk.ErrorResponse](t, rec).Error)
	})

	t.Run("demoting the last owner is a 400 conflict", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPatch, "/v1/teams/"+team.ID+"/members/user-alice", "user-alice",
			teamsdk.ChangeRoleRequest{Role: "member"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "conflict", decode[teamsdk.ErrorResponse](t, rec).Error)
	})

	t.Run("member removes self, roster shrinks", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, "/v1/teams/"+team.ID+"/members/user-bob", "user-bob", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestPublicEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("tiers", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/v1/tiers", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[teamsdk.ListTiersResponse](t, rec).Tiers, 4)
	})

	t.Run("livez", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/livez", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", decode[teamsdk.HealthResponse](t, rec).Status)
	})

	t.Run("readyz", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
