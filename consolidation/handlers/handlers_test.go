package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
	"github.com/doitintl/hello/records-consolidation/consolidation/iface/mocks"
	"github.com/doitintl/hello/records-consolidation/framework/mid"
	"github.com/doitintl/hello/records-consolidation/framework/web"
	"github.com/doitintl/hello/records-consolidation/internal"
	"github.com/doitintl/hello/records-consolidation/logger"
)

func newTestHandler(t *testing.T) (*Consolidation, *mocks.Service) {
	svc := mocks.NewService(t)

	return &Consolidation{
		loggerProvider: logger.FromContext,
		service:        svc,
	}, svc
}

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, nil)
	internal.ContextWithData(ctx, &internal.Data{Now: time.Now()})

	return ctx, w
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx, w := newTestContext(http.MethodGet, "/health")

	assert.NoError(t, h.Health(ctx))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alive", w.Body.String())
}

func TestRun(t *testing.T) {
	h, svc := newTestHandler(t)

	started := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	report := &domain.RunReport{
		RunID:            "run-1",
		StartedAt:        started,
		FinishedAt:       started.Add(2 * time.Second),
		ConsolidatedRows: 12,
		SpreadsheetURL:   "https://docs.google.com/spreadsheets/d/id/edit",
		Demographic:      domain.SourceReport{Domain: domain.DomainDemographic, FilesListed: 2, FilesRead: 2, Rows: 10},
		Clinical:         domain.SourceReport{Domain: domain.DomainClinical, FilesListed: 1, FilesRead: 1, Rows: 12},
	}

	svc.On("Run", mock.Anything).Return(report, nil)

	ctx, w := newTestContext(http.MethodPost, "/consolidate")

	assert.NoError(t, h.Run(ctx))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "12 rows published")
	assert.Contains(t, w.Body.String(), "demographic: 2 files listed, 2 read, 0 skipped, 0 failed, 10 rows")

	v, ok := internal.DataFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "run-1", v.RunID)
	assert.Equal(t, http.StatusOK, v.StatusCode)
}

func TestRunFailure(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.On("Run", mock.Anything).Return(nil, domain.ErrSheetNotFound)

	ctx, w := newTestContext(http.MethodGet, "/consolidate")

	assert.NoError(t, h.Run(ctx))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "consolidation failed: target spreadsheet not found", w.Body.String())
	assert.Len(t, ctx.Errors, 1)
}

func TestRunStopsWaitingWhenClientDisconnects(t *testing.T) {
	h, svc := newTestHandler(t)

	ctx, w := newTestContext(http.MethodPost, "/consolidate")

	reqCtx, cancel := context.WithCancel(ctx.Request.Context())
	ctx.Request = ctx.Request.WithContext(reqCtx)

	l, err := logger.NewLogger(ctx)
	require.NoError(t, err)

	svc.On("Run", mock.MatchedBy(func(c context.Context) bool {
		return c.Done() != nil && logger.FromContext(c) == logger.ILogger(l)
	})).Run(func(args mock.Arguments) {
		cancel()
		<-args.Get(0).(context.Context).Done()
	}).Return(nil, context.Canceled)

	assert.NoError(t, h.Run(ctx))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "consolidation failed: context canceled", w.Body.String())
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name       string
		records    []map[string]interface{}
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "published",
			records:    []map[string]interface{}{{"Name": "Bob", "Age": float64(34)}},
			wantStatus: http.StatusOK,
			wantBody:   `[{"Name":"Bob","Age":34}]`,
		},
		{
			name:       "empty",
			records:    []map[string]interface{}{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "missing spreadsheet",
			err:        domain.ErrSheetNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found: target spreadsheet not found"}`,
		},
		{
			name:       "read failure",
			err:        errors.New("quota exceeded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error: quota exceeded"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.On("PublishedRecords", mock.Anything).Return(tt.records, tt.err)

			app := web.NewTestApp(mid.Errors())
			app.Get("/records", h.Records, mid.StaticToken("s3cr3t"))

			w := httptest.NewRecorder()
			app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/records?token=s3cr3t", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRecordsRejectsWrongTokenBeforeReading(t *testing.T) {
	h, svc := newTestHandler(t)

	app := web.NewTestApp(mid.Errors())
	app.Get("/records", h.Records, mid.StaticToken("s3cr3t"))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/records?token=nope", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "PublishedRecords", mock.Anything)
}

