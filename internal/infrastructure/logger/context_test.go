package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)

	ctx := WithContext(context.Background(), logger)

	retrievedLogger := FromContext(ctx)
	assert.NotNil(t, retrievedLogger)
}

func TestFromContext_NotFound(t *testing.T) {
	logger := FromContext(context.Background())

	// Returns a no-op logger rather than nil
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.Info("test")
	})
}

func TestWithRequestID(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)

	newCtx, newLogger := WithRequestID(context.Background(), logger, "req-123")

	assert.NotNil(t, newLogger)
	assert.Equal(t, "req-123", GetRequestID(newCtx))
}

func TestGetRequestID_NotSet(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}
