// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// IsValidFormat checks if the format is one of the allowed values.
func IsValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// rule is the separator printed under table headers.
var rule = strings.Repeat("─", 64)

// response is the JSON envelope for every command.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(out io.Writer, message string, data any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(response{Status: "ok", Message: message, Data: data}); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
