package errorreporting

import (
	"context"
	"net/http"

	"cloud.google.com/go/errorreporting"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/records-consolidation/common"
)

var erc *errorreporting.Client

type Metadata struct {
	Req   *http.Request
	User  string
	Stack []byte
}

// Init creates the error reporting client. Reporting stays disabled on
// localhost or without a project.
func Init(ctx context.Context) error {
	if common.IsLocalhost || common.ProjectID == "" {
		return nil
	}

	client, err := errorreporting.NewClient(ctx, common.ProjectID, errorreporting.Config{
		ServiceName:    common.Service,
		ServiceVersion: common.Revision,
	})
	if err != nil {
		return err
	}

	erc = client

	return nil
}

// Close flushes pending reports.
func Close() error {
	if erc == nil {
		return nil
	}

	return erc.Close()
}

func Report(err error, md *Metadata) {
	if err == nil || erc == nil {
		return
	}

	e := errorreporting.Entry{
		Error: err,
	}

	if md != nil {
		e.User = md.User
		e.Req = md.Req
		e.Stack = md.Stack
	}

	erc.Report(e)
}

func ReportRequestError(ctx *gin.Context, err error) {
	Report(err, &Metadata{
		Req: ctx.Request,
	})
}
