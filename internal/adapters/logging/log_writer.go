// Package logging adapts zap to the secondary.LogWriter audit port.
package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/lister/internal/ctxutil"
	"github.com/example/lister/internal/ports/secondary"
)

// ZapLogWriter implements secondary.LogWriter by emitting one structured
// line per mutation.
type ZapLogWriter struct {
	logger *zap.Logger
}

// NewZapLogWriter creates a new ZapLogWriter.
func NewZapLogWriter(logger *zap.Logger) *ZapLogWriter {
	return &ZapLogWriter{logger: logger.Named("audit")}
}

// LogCreate logs a create operation for an entity.
func (w *ZapLogWriter) LogCreate(ctx context.Context, entityType string, entityID int64) error {
	w.write(ctx, "create", entityType, entityID)
	return nil
}

// LogUpdate logs an update operation. An empty fieldName means the whole
// record was replaced.
func (w *ZapLogWriter) LogUpdate(ctx context.Context, entityType string, entityID int64, fieldName, oldValue, newValue string) error {
	var fields []zap.Field
	if fieldName != "" {
		fields = append(fields, zap.String("field", fieldName))
		if oldValue != "" {
			fields = append(fields, zap.String("old", oldValue))
		}
		fields = append(fields, zap.String("new", newValue))
	}
	w.write(ctx, "update", entityType, entityID, fields...)
	return nil
}

// LogDelete logs a delete operation for an entity.
func (w *ZapLogWriter) LogDelete(ctx context.Context, entityType string, entityID int64) error {
	w.write(ctx, "delete", entityType, entityID)
	return nil
}

func (w *ZapLogWriter) write(ctx context.Context, action, entityType string, entityID int64, extra ...zap.Field) {
	fields := []zap.Field{
		zap.String("action", action),
		zap.String("entity", entityType),
		zap.Int64("id", entityID),
	}
	if requestID := ctxutil.RequestIDFromContext(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	fields = append(fields, extra...)
	w.logger.Info("record "+action+"d", fields...)
}

// Ensure ZapLogWriter implements the interface.
var _ secondary.LogWriter = (*ZapLogWriter)(nil)
