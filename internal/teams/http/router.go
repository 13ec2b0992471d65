package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/huddlehq/huddle/internal/teams/service"
	"github.com/huddlehq/huddle/internal/teams/store"
	"github.com/huddlehq/huddle/pkg/httpx"
	"github.com/huddlehq/huddle/pkg/jwtx"
	"github.com/huddlehq/huddle/pkg/slogx"

	_ "github.com/huddlehq/huddle/api/teams" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	TeamService         *service.TeamService
	InvitationService   *service.InvitationService
	SubscriptionService *service.SubscriptionService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Global middleware chain. Metrics wraps everything so even rejected
	// requests are counted.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerTeams()
	r.registerMembers()
	r.registerInvitations()
	r.registerSubscription()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Huddle Team Service API
//	@version		0.1.0
//	@description	Multi-tenant team management: teams, role-based memberships, email invitations with expiring tokens, and subscription tiers bounding team size.
//	@description
//	@description				Authentication is delegated to an external identity provider; requests carry its JWT access tokens.
//
//	@contact.name				HuddleHQ Team
//	@contact.url				https://github.com/huddlehq/huddle
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerTeams() {
	h := &TeamsHandler{TeamService: r.TeamService}

	// Creation is moderate: teams are not minted in bulk.
	r.Mux.Handle("POST /v1/teams",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/teams",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/teams/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/teams/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/teams/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{TeamService: r.TeamService}

	r.Mux.Handle("GET /v1/teams/{id}/members",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/teams/{id}/members",
		httpx.Chain(http.HandlerFunc(h.HandleAdd),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/teams/{id}/members/{userID}",
		httpx.Chain(http.HandlerFunc(h.HandleChangeRole),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/teams/{id}/members/{userID}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}
	accept := &AcceptHandler{
		InvitationService: r.InvitationService,
		TeamService:       r.TeamService,
	}

	// Minting is moderate per user; invitations go out one at a time.
	r.Mux.Handle("POST /v1/teams/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/teams/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/teams/{id}/invitations/{invitationID}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Verify is unauthenticated and token-guessable, so it gets a strict
	// per-IP limit.
	r.Mux.Handle("GET /v1/invitations/{token}",
		httpx.Chain(http.HandlerFunc(accept.HandleVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/invitations/{token}/accept",
		httpx.Chain(http.HandlerFunc(accept.HandleAccept),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSubscription() {
	h := &SubscriptionHandler{
		SubscriptionService: r.SubscriptionService,
		TeamService:         r.TeamService,
	}

	r.Mux.Handle("PUT /v1/teams/{id}/subscription",
		httpx.Chain(http.HandlerFunc(h.HandleChange),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Tier catalogue is public reference data.
	tiers := &TiersHandler{SubscriptionService: r.SubscriptionService}
	r.Mux.Handle("GET /v1/tiers",
		httpx.Chain(tiers,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", httpx.MetricsHandler())
}
