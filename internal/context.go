package internal

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CtxDataKey is how request values or stored/retrieved.
const CtxDataKey = "app-context"

const (
	traceIDTag = "traceId"
	runIDTag   = "runId"
)

// Data represent state for each request.
type Data struct {
	TraceID    string
	StatusCode int
	Now        time.Time
	// RunID is set by handlers that trigger a pipeline run.
	RunID string
}

// Tags identifies the request, and the pipeline run it triggered if any, in
// error reports.
func (d *Data) Tags() map[string]string {
	tags := map[string]string{traceIDTag: d.TraceID}
	if d.RunID != "" {
		tags[runIDTag] = d.RunID
	}

	return tags
}

// ContextWithData sets a gin.Context with context data.
func ContextWithData(ctx *gin.Context, data *Data) {
	ctx.Set(CtxDataKey, data)
}

// DataFromContext retrieves data from gin.Context.
func DataFromContext(ctx *gin.Context) (*Data, bool) {
	v, ok := ctx.Value(CtxDataKey).(*Data)
	return v, ok
}
