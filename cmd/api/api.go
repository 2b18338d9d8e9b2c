package api

import (
	"net/http"
	"os"

	"github.com/doitintl/hello/records-consolidation/config"
	consolidation "github.com/doitintl/hello/records-consolidation/consolidation/handlers"
	"github.com/doitintl/hello/records-consolidation/framework/connection"
	"github.com/doitintl/hello/records-consolidation/framework/mid"
	"github.com/doitintl/hello/records-consolidation/framework/web"
	"github.com/doitintl/hello/records-consolidation/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	cfg      *config.Config
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, cfg *config.Config) *API {
	return &API{
		shutdown,
		logging,
		conn,
		cfg,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.cfg.SentryDSN, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	a.routes(web.NewGroup(app, ""), consolidation.NewConsolidation(loggerProvider, a.conn, a.cfg))

	return app
}

func (a *API) routes(root *web.Group, h *consolidation.Consolidation) {
	root.Get("/", h.Health)
	root.Get("/health", h.Health)

	root.Trigger("/consolidate", h.Run)
	// Path used by the existing scheduler jobs.
	root.Trigger("/executar", h.Run)

	if a.cfg.ReadToken != "" {
		root.Get("/records", h.Records, mid.StaticToken(a.cfg.ReadToken))
	}
}
