package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations pick up the request id from context when present.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, entityType string, entityID int64) error

	// LogUpdate logs an update operation for an entity field.
	// fieldName, oldValue, newValue describe what changed.
	LogUpdate(ctx context.Context, entityType string, entityID int64, fieldName, oldValue, newValue string) error

	// LogDelete logs a delete operation for an entity.
	LogDelete(ctx context.Context, entityType string, entityID int64) error
}
