package logger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/doitintl/hello/records-consolidation/common"
)

const (
	// CtxLoggerKey is how request values or stored/retrieved.
	CtxLoggerKey = "app-logger"

	// parentLogID is the name of the log holding one summary entry per request.
	parentLogID = "request_log"

	// childLogID is the name of the log holding application entries.
	childLogID = "app_log"

	runIDLabel = "runId"

	// labels keys for monitored resource definition
	projectIDField    = "project_id"
	serviceNameField  = "service_name"
	revisionNameField = "revision_name"

	cloudRunType = "cloud_run_revision"
	globalType   = "global"

	gcpLogging = "GCP_LOGGING"
)

var (
	parentLogger *logging.Logger
	childLogger  *logging.Logger
	resource     *monitoredres.MonitoredResource
	cloudLogging bool
)

type Provider func(ctx context.Context) ILogger

type Logging struct {
	client *logging.Client
}

// NewLogging initializes parent & child cloud logging clients. Cloud logging
// is off on localhost or without a project, unless GCP_LOGGING says otherwise.
func NewLogging(ctx context.Context) (*Logging, error) {
	var err error

	cloudLogging, err = strconv.ParseBool(common.GetEnv(gcpLogging, strconv.FormatBool(!common.IsLocalhost)))
	if err != nil {
		return nil, err
	}

	if !cloudLogging || common.ProjectID == "" {
		cloudLogging = false
		return &Logging{}, nil
	}

	client, err := logging.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, err
	}

	parentLogger = client.Logger(parentLogID)
	childLogger = client.Logger(childLogID)
	resource = monitoredResource()

	return &Logging{client}, nil
}

// Close flushes pending entries.
func (l *Logging) Close() error {
	if l.client == nil {
		return nil
	}

	return l.client.Close()
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// NewLogger sets gin.Context with a new logger, with the related google trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Cloud-Trace-Context")
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(l.started, t)
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

type loggerKey struct{}

// NewContext returns a copy of parent carrying l. It is used for work that
// must not hold on to the gin.Context, which is recycled after the request.
func NewContext(parent context.Context, l ILogger) context.Context {
	return context.WithValue(parent, loggerKey{}, l)
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	if l, ok := ctx.Value(loggerKey{}).(ILogger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	return fmt.Sprintf("projects/%s/traces/%d%s", common.ProjectID, started.UnixNano(), id)
}

func monitoredResource() *monitoredres.MonitoredResource {
	if common.Service != "" && common.Revision != "localhost" {
		return &monitoredres.MonitoredResource{
			Type: cloudRunType,
			Labels: map[string]string{
				projectIDField:    common.ProjectID,
				serviceNameField:  common.Service,
				revisionNameField: common.Revision,
			},
		}
	}

	return &monitoredres.MonitoredResource{
		Type: globalType,
		Labels: map[string]string{
			projectIDField: common.ProjectID,
		},
	}
}
