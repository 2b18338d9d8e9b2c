package internal

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDataTags(t *testing.T) {
	v := &Data{TraceID: "projects/p/traces/abc"}
	assert.Equal(t, map[string]string{"traceId": "projects/p/traces/abc"}, v.Tags())

	v.RunID = "run-1"
	assert.Equal(t, map[string]string{"traceId": "projects/p/traces/abc", "runId": "run-1"}, v.Tags())
}

func TestDataFromContext(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := DataFromContext(ctx)
	assert.False(t, ok)

	v := &Data{RunID: "run-1"}
	ContextWithData(ctx, v)

	got, ok := DataFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, v, got)
}
