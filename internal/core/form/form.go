// Package form models the insert-or-update form shared by every list.
//
// A form is either in Insert mode (no identifier) or Edit mode (an
// identifier copied in from an existing record). Submitting it yields a
// Submission, which is exactly one of Create or Update.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Submission is the tagged union produced by submitting a form.
// The only implementations are Create and Update.
type Submission[F any] interface {
	Fields() F
	isSubmission()
}

// Create asks for a new record with the given field values.
type Create[F any] struct {
	Values F
}

// Fields returns the submitted values.
func (c Create[F]) Fields() F { return c.Values }
func (Create[F]) isSubmission() {}

// Update asks for the record at ID to be replaced with Values.
type Update[F any] struct {
	ID     int64
	Values F
}

// Fields returns the submitted values.
func (u Update[F]) Fields() F { return u.Values }
func (Update[F]) isSubmission() {}

// Decide turns a raw identifier field into a Submission.
// An empty (or blank) id means Create; anything else must parse as an id.
func Decide[F any](rawID string, values F) (Submission[F], error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return Create[F]{Values: values}, nil
	}

	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return Update[F]{ID: id, Values: values}, nil
}

// ParseID parses a record identifier.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", raw)
	}
	return id, nil
}

// Number coerces a numeric input. Empty and malformed input become 0;
// the submission is never rejected.
func Number(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Flag reads a checkbox-style input.
func Flag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
