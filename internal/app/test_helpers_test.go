package app

import (
	"context"

	"github.com/example/lister/internal/ports/secondary"
)

// Ensure mockLogWriter implements the interface
var _ secondary.LogWriter = (*mockLogWriter)(nil)

type logEntry struct {
	action     string
	entityType string
	entityID   int64
	fieldName  string
	newValue   string
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	entries []logEntry
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType string, entityID int64) error {
	m.entries = append(m.entries, logEntry{action: "create", entityType: entityType, entityID: entityID})
	return nil
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType string, entityID int64, fieldName, oldValue, newValue string) error {
	m.entries = append(m.entries, logEntry{action: "update", entityType: entityType, entityID: entityID, fieldName: fieldName, newValue: newValue})
	return nil
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType string, entityID int64) error {
	m.entries = append(m.entries, logEntry{action: "delete", entityType: entityType, entityID: entityID})
	return nil
}
