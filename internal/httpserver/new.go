package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	extractionHTTP "github.com/suncom1029-bot/ai-todo-manager/internal/extraction/delivery/http"
	"github.com/suncom1029-bot/ai-todo-manager/internal/middleware"
	summaryHTTP "github.com/suncom1029-bot/ai-todo-manager/internal/summary/delivery/http"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting guards
	mw *middleware.Middleware

	// Assistant domains
	extractionHandler extractionHTTP.Handler
	summaryHandler    summaryHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware *middleware.Middleware

	ExtractionHandler extractionHTTP.Handler
	SummaryHandler    summaryHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		extractionHandler: cfg.ExtractionHandler,
		summaryHandler:    cfg.SummaryHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.mw == nil {
		return errors.New("middleware is required")
	}
	if srv.extractionHandler == nil {
		return errors.New("extraction handler is required")
	}
	if srv.summaryHandler == nil {
		return errors.New("summary handler is required")
	}
	return nil
}
