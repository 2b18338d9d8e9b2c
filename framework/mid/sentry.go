package mid

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/records-consolidation/framework/web"
	"github.com/doitintl/hello/records-consolidation/internal"
)

func captureSentryError(ctx *gin.Context, err error) {
	hub := sentrygin.GetHubFromContext(ctx)
	if hub == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)

		if v, ok := internal.DataFromContext(ctx); ok {
			scope.SetTags(v.Tags())
		}

		hub.CaptureMessage(err.Error())
	})
}

// Sentry captures server errors, tagged with the trace ID and, for pipeline
// triggers, the run ID. Handlers that answer a failure themselves, as the
// consolidation trigger does, are captured through ctx.Errors.
func Sentry() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if err := before(ctx); err != nil {
				var webErr *web.Error
				if !errors.As(err, &webErr) || webErr.Status >= http.StatusInternalServerError {
					captureSentryError(ctx, err)
				}

				return err
			}

			if ctx.Writer.Status() >= http.StatusInternalServerError {
				if lastErr := ctx.Errors.Last(); lastErr != nil {
					captureSentryError(ctx, lastErr.Err)
				}
			}

			return nil
		}

		return h
	}

	return f
}
