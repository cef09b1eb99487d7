package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/contract"
	"github.com/portfolio/backend/internal/metrics"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// RouterConfig carries the dependencies NewRouter wires together.
type RouterConfig struct {
	DB             repository.DB
	ContactService service.ContactService
	FrontendURL    string
	AdminToken     string
	// RateLimitPerMinute caps contact submissions per client IP; 0 disables it.
	RateLimitPerMinute int
	// Static serves every path outside /api/; nil leaves those paths unrouted.
	Static http.Handler
}

// NewRouter builds the full middleware chain and route table.
func NewRouter(cfg RouterConfig) http.Handler {
	h := New(cfg.DB, cfg.FrontendURL)
	contactHandler := NewContactHandler(cfg.ContactService)

	var create http.Handler = http.HandlerFunc(contactHandler.Create)
	if cfg.RateLimitPerMinute > 0 {
		create = NewRateLimiter(cfg.RateLimitPerMinute).Middleware(create)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("POST "+contract.ContactPath, create)
	mux.Handle("GET "+contract.ContactPath, auth.RequireAdminToken(cfg.AdminToken)(http.HandlerFunc(contactHandler.List)))
	// Method-less so any unknown /api/ request gets JSON, never the SPA shell.
	mux.HandleFunc("/api/", NotFoundAPI)
	mux.Handle("GET /metrics", metrics.Handler())
	if cfg.Static != nil {
		mux.Handle("/", cfg.Static)
	}

	return RequestID(RequestLogger(SecurityHeaders(h.CORS(Metrics(mux)))))
}
