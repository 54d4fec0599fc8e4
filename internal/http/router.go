package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lanternworks/rolodex/internal/service"
	"github.com/lanternworks/rolodex/internal/store"
	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/jwtx"
	"github.com/lanternworks/rolodex/pkg/slogx"

	_ "github.com/lanternworks/rolodex/api/docs" // Swagger docs
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

	store          store.Store
	UserService    *service.UserService
	TokenService   *service.TokenService
	ContactService *service.ContactService
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

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerContacts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rolodex Contacts Service API
//	@version		0.1.0
//	@description	A contacts service with email/password accounts. Logging in returns a signed JWT access token; all contact operations require it and only ever see the caller's own contacts.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
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

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /token - strict rate limit by IP (authentication attempts)
	tokenHandler := &TokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /me - authenticated, lenient rate limit by subject
	r.Mux.Handle("GET /v1/me", r.secured(&MeHandler{}))
}

func (r *Router) registerContacts() {
	h := &ContactsHandler{ContactService: r.ContactService}

	r.Mux.Handle("POST /v1/contacts", r.secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/contacts", r.secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/contacts/{id}", r.secured(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /v1/contacts/{id}", r.secured(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/contacts/{id}", r.secured(http.HandlerFunc(h.HandleDelete)))
}

// secured wraps a handler with the full protected-endpoint chain: bearer
// verification, subject resolution, then per-user rate limiting.
func (r *Router) secured(h http.Handler) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp/signature)
		RequireUser(r.UserService),        // map subject to an account
		httpx.RateLimitBySubject(httpx.LenientLimit),
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
}
