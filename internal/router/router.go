package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/doacao-api/internal/middleware"
	"github.com/jwalitptl/doacao-api/pkg/event"
	"github.com/jwalitptl/doacao-api/pkg/httputil"
)

const msgRouteNotFound = "Rota não encontrada"

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// EventHandler registers routes whose mutations publish change events.
type EventHandler interface {
	RegisterRoutes(*gin.RouterGroup, *event.EventTrackerMiddleware)
}

// MetricsHandler is satisfied by the prometheus handler.
type MetricsHandler interface {
	Middleware() gin.HandlerFunc
	Handler() gin.HandlerFunc
}

type Handlers struct {
	Health      Handler
	Donor       EventHandler
	Appointment EventHandler
	Stock       EventHandler
	Report      Handler
	Metrics     MetricsHandler
}

type RouterConfig struct {
	RateLimit    rate.Limit
	RateBurst    int
	CORSConfig   middleware.CORSConfig
	MaxBodyBytes int64
	MetricsPath  string
}

type Router struct {
	engine       *gin.Engine
	handlers     Handlers
	eventTracker *event.EventTrackerMiddleware
	config       RouterConfig
}

// NewRouter builds the engine and its middleware chain. eventTracker may be nil.
func NewRouter(handlers Handlers, eventTracker *event.EventTrackerMiddleware, config RouterConfig) *Router {
	engine := gin.New()
	// Trailing-slash variants are unknown routes, not redirects.
	engine.RedirectTrailingSlash = false

	r := &Router{
		engine:       engine,
		handlers:     handlers,
		eventTracker: eventTracker,
		config:       config,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
	)
	if handlers.Metrics != nil {
		engine.Use(handlers.Metrics.Middleware())
	}
	engine.Use(middleware.CORS(config.CORSConfig))

	if config.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}
	engine.Use(middleware.SizeLimit(config.MaxBodyBytes))

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api")

	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(api)
	}
	r.handlers.Donor.RegisterRoutes(api, r.eventTracker)
	r.handlers.Appointment.RegisterRoutes(api, r.eventTracker)
	r.handlers.Stock.RegisterRoutes(api, r.eventTracker)
	r.handlers.Report.RegisterRoutes(api)

	if r.handlers.Metrics != nil {
		path := r.config.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, r.handlers.Metrics.Handler())
	}

	r.engine.NoRoute(func(c *gin.Context) {
		httputil.RespondWithErrorMessage(c, http.StatusNotFound, msgRouteNotFound)
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
