package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/lister/internal/ctxutil"
)

func newObservedWriter() (*ZapLogWriter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewZapLogWriter(zap.New(core)), logs
}

func TestZapLogWriter_Create(t *testing.T) {
	w, logs := newObservedWriter()

	require.NoError(t, w.LogCreate(context.Background(), "person", 1))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "record created", entries[0].Message)
	assert.Equal(t, "audit", entries[0].LoggerName)
	ctxMap := entries[0].ContextMap()
	assert.Equal(t, "person", ctxMap["entity"])
	assert.Equal(t, int64(1), ctxMap["id"])
	assert.NotContains(t, ctxMap, "request_id")
}

func TestZapLogWriter_UpdateField(t *testing.T) {
	w, logs := newObservedWriter()
	ctx := ctxutil.WithRequestID(context.Background(), "req-9")

	require.NoError(t, w.LogUpdate(ctx, "product", 3, "purchased", "", "true"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "record updated", entries[0].Message)
	ctxMap := entries[0].ContextMap()
	assert.Equal(t, "purchased", ctxMap["field"])
	assert.Equal(t, "true", ctxMap["new"])
	assert.Equal(t, "req-9", ctxMap["request_id"])
	assert.NotContains(t, ctxMap, "old")
}

func TestZapLogWriter_Delete(t *testing.T) {
	w, logs := newObservedWriter()

	require.NoError(t, w.LogDelete(context.Background(), "product", 8))
	assert.Equal(t, 1, logs.FilterMessage("record deleted").Len())
}
