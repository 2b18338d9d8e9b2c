package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/records-consolidation/config"
	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
	"github.com/doitintl/hello/records-consolidation/consolidation/iface"
	"github.com/doitintl/hello/records-consolidation/consolidation/service"
	"github.com/doitintl/hello/records-consolidation/errorreporting"
	"github.com/doitintl/hello/records-consolidation/framework/connection"
	"github.com/doitintl/hello/records-consolidation/framework/web"
	"github.com/doitintl/hello/records-consolidation/internal"
	"github.com/doitintl/hello/records-consolidation/logger"
)

const aliveMessage = "alive"

type Consolidation struct {
	loggerProvider logger.Provider
	service        iface.Service
}

func NewConsolidation(loggerProvider logger.Provider, conn *connection.Connection, cfg *config.Config) *Consolidation {
	return &Consolidation{
		loggerProvider,
		service.NewService(loggerProvider, conn, cfg),
	}
}

func (h *Consolidation) Health(ctx *gin.Context) error {
	return web.RespondText(ctx, aliveMessage, http.StatusOK)
}

// Run triggers a pipeline run and answers with its summary as text. The run
// gets the request context, so a client that disconnects stops waiting.
func (h *Consolidation) Run(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	report, err := h.service.Run(logger.NewContext(ctx.Request.Context(), l))
	if err != nil {
		l.Errorf("consolidation failed: %s", err)
		_ = ctx.Error(err)
		errorreporting.ReportRequestError(ctx, err)

		return web.RespondText(ctx, fmt.Sprintf("consolidation failed: %s", err), http.StatusInternalServerError)
	}

	if v, ok := internal.DataFromContext(ctx); ok {
		v.RunID = report.RunID
	}

	return web.RespondText(ctx, report.String(), http.StatusOK)
}

// Records returns the published table as a list of objects keyed by column.
func (h *Consolidation) Records(ctx *gin.Context) error {
	records, err := h.service.PublishedRecords(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSheetNotFound) {
			return web.TranslateError(fmt.Errorf("%w: %w", web.ErrNotFound, err))
		}

		return web.TranslateError(fmt.Errorf("%w: %w", web.ErrInternalServerError, err))
	}

	return web.Respond(ctx, records, http.StatusOK)
}
