package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
)

func TestLoggingMiddleware(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	logger := log.New("debug", "json", &buf)
	client := LoggingMiddleware(resty.New(), logger)

	ctx, correlationID := log.WithCorrelationID(context.Background())

	res, err := client.R().SetContext(ctx).Get(ts.URL + "/ok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode())

	out := buf.String()
	assert.Contains(t, out, "snap: request started")
	assert.Contains(t, out, "snap: request completed")
	assert.Contains(t, out, `"correlation_id":"`+correlationID+`"`)
	assert.Contains(t, out, `"status_code":200`)

	buf.Reset()
	res, err = client.R().SetContext(ctx).Get(ts.URL + "/missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode())
	assert.Contains(t, buf.String(), `"level":"warning"`)
}

func TestLoggingMiddlewareTransportError(t *testing.T) {
	var buf bytes.Buffer
	client := LoggingMiddleware(resty.New(), log.New("debug", "json", &buf))

	_, err := client.R().Get("http://127.0.0.1:1/unreachable")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "snap: request could not be completed")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "12 ms", formatDuration(12*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
