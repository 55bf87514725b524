package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New("test", &buf), traceIDs: utils.NewTraceIDGenerator()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rr.Header().Get(traceIDHeader)
	assert.NotEmpty(t, traceID)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewTraceIDGenerator()}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewTraceIDGenerator()}
	handler := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
