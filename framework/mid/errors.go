package mid

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/records-consolidation/errorreporting"
	"github.com/doitintl/hello/records-consolidation/framework/web"
	"github.com/doitintl/hello/records-consolidation/internal"
	"github.com/doitintl/hello/records-consolidation/logger"
)

// Errors answers errors coming out of the call chain with a JSON body.
// Client errors are logged as warnings; anything else is logged as an error
// and sent to Error Reporting.
func Errors() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			err := before(ctx)
			if err == nil {
				return nil
			}

			if serverError(err) {
				log.Errorf("%s: ERROR: %v", v.TraceID, err)
				errorreporting.ReportRequestError(ctx, err)
			} else {
				log.Warningf("%s: %v", v.TraceID, err)
			}

			if err := web.RespondError(ctx, err); err != nil {
				return err
			}

			// If we receive the shutdown err we need to return it
			// back to the base handler to shutdown the service.
			if web.IsShutdown(err) {
				return err
			}

			return nil
		}

		return h
	}

	return f
}

// serverError reports whether err is answered with a 5xx status.
func serverError(err error) bool {
	var webErr *web.Error
	if errors.As(err, &webErr) {
		return webErr.Status >= http.StatusInternalServerError
	}

	return true
}
