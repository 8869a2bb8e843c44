package form

// Mode is the form's current state.
type Mode int

const (
	// ModeInsert is the empty-identifier state; submitting creates a record.
	ModeInsert Mode = iota
	// ModeEdit holds an identifier; submitting replaces that record.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "insert"
}

// State is the two-state form machine.
// The zero value is an empty form in Insert mode.
type State[F any] struct {
	id     int64
	Values F
}

// Load copies an existing record into the form and enters Edit mode.
func (s *State[F]) Load(id int64, values F) {
	s.id = id
	s.Values = values
}

// Clear empties the form and returns to Insert mode.
func (s *State[F]) Clear() {
	var zero F
	s.id = 0
	s.Values = zero
}

// Mode reports the current state.
func (s *State[F]) Mode() Mode {
	if s.id != 0 {
		return ModeEdit
	}
	return ModeInsert
}

// ID returns the identifier held in Edit mode, 0 otherwise.
func (s *State[F]) ID() int64 {
	return s.id
}

// Submit produces the submission for the current state.
func (s *State[F]) Submit() Submission[F] {
	if s.id != 0 {
		return Update[F]{ID: s.id, Values: s.Values}
	}
	return Create[F]{Values: s.Values}
}
