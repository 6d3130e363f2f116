package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToInfo(t *testing.T) {
	logger := New(Config{})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_ParsesLevel(t *testing.T) {
	logger := New(Config{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	logger := New(Config{Level: "shouting"})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	log := ComponentLogger(base, "resolver")
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"resolver"`)
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := base.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")
}

func TestFromContext_NoLoggerIsSafe(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	// Must not panic.
	log.Info().Msg("dropped")
}

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", TraceIDFromContext(ctx))
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", GetOrGenerateTraceID(ctx))
}

func TestGetOrGenerateTraceID_Generates(t *testing.T) {
	id := GetOrGenerateTraceID(context.Background())
	assert.Len(t, id, 26, "ULIDs are 26 characters")

	other := GetOrGenerateTraceID(context.Background())
	assert.NotEqual(t, id, other)
}
