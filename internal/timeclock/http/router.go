package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/service"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
	"github.com/aussiebroadwan/timeclock/pkg/httpx"
	"github.com/aussiebroadwan/timeclock/pkg/jwtx"
	"github.com/aussiebroadwan/timeclock/pkg/slogx"

	_ "github.com/aussiebroadwan/timeclock/api/timeclock" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Scopes enforced on the API. Tokens are minted by the external identity
// provider; we only verify and gate on them.
const (
	ScopeClockWrite = "clock:write"
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	ClockService    *service.ClockService
	StatsService    *service.StatsService
	UserService     *service.UserService
	LocationService *service.LocationService
	ShiftService    *service.ShiftService
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
	r.registerClock()
	r.registerShifts()
	r.registerDashboard()
	r.registerUsers()
	r.registerLocations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Timeclock Service API
//	@version		0.1.0
//	@description	Geofenced employee time tracking: clock-in/clock-out against a
//	@description	configured site perimeter, plus 7-day dashboard aggregates.
//	@description
//	@description				Authentication is delegated to an external identity provider;
//	@description				this API verifies HS256 bearer tokens and enforces scopes.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/timeclock
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

func (r *Router) registerClock() {
	h := &ClockHandler{ClockService: r.ClockService}

	// POST /clock/in and /clock/out mutate the ledger - strict rate limit
	// by user to absorb retry storms from flaky mobile clients
	r.Mux.Handle("POST /v1/clock/in",
		httpx.Chain(http.HandlerFunc(h.HandleClockIn),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeClockWrite),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/clock/out",
		httpx.Chain(http.HandlerFunc(h.HandleClockOut),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeClockWrite),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// GET /clock/status - polled by the clock page, lenient limit
	r.Mux.Handle("GET /v1/clock/status",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerShifts() {
	h := &ShiftsHandler{
		ShiftService: r.ShiftService,
		ClockService: r.ClockService,
		UserService:  r.UserService,
	}

	// GET /shifts - admin listing, moderate limit
	r.Mux.Handle("GET /v1/shifts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /shifts/me - the caller's own history, lenient limit
	r.Mux.Handle("GET /v1/shifts/me",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{StatsService: r.StatsService}

	// Dashboard aggregation scans the whole window - moderate limit
	r.Mux.Handle("GET /v1/dashboard/stats",
		httpx.Chain(http.HandlerFunc(h.HandleStats),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/dashboard/active",
		httpx.Chain(http.HandlerFunc(h.HandleActive),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	me := &MeHandler{UserService: r.UserService}
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerLocations() {
	h := &LocationsHandler{LocationService: r.LocationService}

	r.Mux.Handle("POST /v1/locations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/locations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/locations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(ScopeAdminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
