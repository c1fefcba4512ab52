package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"routine-planner/internal/middleware"
	"routine-planner/internal/observability"
	plannerHTTP "routine-planner/internal/planner/delivery/http"
	"routine-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Planner domain
	plannerHandler plannerHTTP.Handler
	mw             middleware.Middleware

	// Observability
	metrics *observability.Metrics
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PlannerHandler plannerHTTP.Handler
	Middleware     middleware.Middleware

	Metrics *observability.Metrics
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		plannerHandler: cfg.PlannerHandler,
		mw:             cfg.Middleware,
		metrics:        cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerHandler == nil {
		return errors.New("planner handler is required")
	}
	return nil
}
