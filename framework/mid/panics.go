package mid

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/records-consolidation/framework/web"
	"github.com/doitintl/hello/records-consolidation/internal"
	"github.com/doitintl/hello/records-consolidation/logger"
)

const sentryFlushTimeout = 5 * time.Second

// Panics recovers from panics in handlers, such as a parser choking on a
// malformed export, and converts the panic to an error.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			defer func() {
				r := recover()
				if r == nil {
					return
				}

				err = fmt.Errorf("panic: %v", r)
				log.Errorf("%s: %s\n%s", v.TraceID, err, debug.Stack())

				if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
					hub.WithScope(func(scope *sentry.Scope) {
						scope.SetTags(v.Tags())
						hub.Recover(err)
					})
					hub.Flush(sentryFlushTimeout)
				}
			}()

			return after(ctx)
		}

		return h
	}

	return f
}
