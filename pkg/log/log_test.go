package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	// um ID existente é preservado
	again, sameID := WithCorrelationID(ctx)
	assert.Equal(t, id, sameID)
	assert.Equal(t, ctx, again)

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithCorrelationIDNilContext(t *testing.T) {
	var nilCtx context.Context

	ctx, id := WithCorrelationID(nilCtx)
	require.NotNil(t, ctx)
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "json", &buf)

	ctx, id := WithCorrelationID(context.Background())
	logger.WithContext(ctx).WithField("operation", "ads.get").Debug("snap: request")

	assert.Contains(t, buf.String(), `"correlation_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"operation":"ads.get"`)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New("verbose", "text", &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
